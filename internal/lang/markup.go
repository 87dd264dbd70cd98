package lang

func init() {
	register(&Language{
		Name:       "html",
		Extensions: []string{".html", ".htm", ".xml", ".vue"},
		Style: CommentStyle{
			Kind:        StyleBlock,
			BlockStart:  "<!--",
			BlockPrefix: "  ",
			BlockEnd:    "-->",
		},
	})
}
