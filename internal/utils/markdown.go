package utils

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// TextoSimples remove a formatação markdown de descrições e observações
// registradas pelos operadores
func TextoSimples(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	for strings.Contains(result, "\n\n\n") {
		result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	}
	return result
}

// Resumo devolve o texto simples numa única linha, cortado em max caracteres
// com reticências
func Resumo(text string, max int) string {
	plain := strings.Join(strings.Fields(TextoSimples(text)), " ")
	if max <= 0 || utf8.RuneCountInString(plain) <= max {
		return plain
	}

	runes := []rune(plain)
	cut := strings.TrimSpace(string(runes[:max]))
	if i := strings.LastIndex(cut, " "); i > max/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return
	case *ast.Hardbreak:
		buf.WriteString("\n")
		return
	case *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	if _, ok := node.(*ast.ListItem); ok {
		buf.WriteString("• ")
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List, *ast.BlockQuote:
		buf.WriteString("\n")
	}
}
