package cssbrace

import (
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Structure holds structural statistics of a stylesheet
type Structure struct {
	Lines            int
	Bytes            int
	Rules            int // Blocks opened by a selector
	AtRuleBlocks     int // Blocks opened by an at-rule (@media, @supports, ...)
	Declarations     int
	Comments         int
	MediaQueries     int
	Keyframes        int
	CustomProperties []string // Unique custom property names, sorted
	Highlighted      []string // Custom properties containing the filter, sorted
}

// StructureOptions controls AnalyzeStructure
type StructureOptions struct {
	VariableFilter string // Substring marking custom properties of interest
	MaxHighlighted int    // 0 = all
}

// statement tracks the tokens seen since the last ';', '{' or '}'
type statement struct {
	first      css.TokenType
	afterFirst css.TokenType
	count      int
}

func (s *statement) add(tt css.TokenType) {
	switch s.count {
	case 0:
		s.first = tt
	case 1:
		s.afterFirst = tt
	}
	s.count++
}

func (s *statement) isDeclaration() bool {
	return s.count >= 2 &&
		(s.first == css.IdentToken || s.first == css.CustomPropertyNameToken) &&
		s.afterFirst == css.ColonToken
}

// AnalyzeStructure tokenizes the document and counts its building blocks
func AnalyzeStructure(doc *Document, opts StructureOptions) *Structure {
	st := &Structure{Lines: len(doc.Lines), Bytes: doc.Size}
	vars := make(map[string]bool)

	lexer := css.NewLexer(parse.NewInputString(doc.Content()))
	depth := 0
	var stmt statement

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.WhitespaceToken:
			continue
		case css.CommentToken:
			st.Comments++
			continue
		case css.LeftBraceToken:
			if stmt.first == css.AtKeywordToken {
				st.AtRuleBlocks++
			} else if stmt.count > 0 {
				st.Rules++
			}
			depth++
			stmt = statement{}
			continue
		case css.RightBraceToken, css.SemicolonToken:
			if depth > 0 && stmt.isDeclaration() {
				st.Declarations++
			}
			if tt == css.RightBraceToken && depth > 0 {
				depth--
			}
			stmt = statement{}
			continue
		case css.AtKeywordToken:
			name := strings.ToLower(string(text))
			if name == "@media" {
				st.MediaQueries++
			}
			if strings.HasSuffix(name, "keyframes") {
				st.Keyframes++
			}
		case css.CustomPropertyNameToken:
			vars[string(text)] = true
		case css.IdentToken:
			if strings.HasPrefix(string(text), "--") {
				vars[string(text)] = true
			}
		}

		stmt.add(tt)
	}

	st.CustomProperties = make([]string, 0, len(vars))
	for name := range vars {
		st.CustomProperties = append(st.CustomProperties, name)
	}
	sort.Strings(st.CustomProperties)

	if opts.VariableFilter != "" {
		for _, name := range st.CustomProperties {
			if strings.Contains(name, opts.VariableFilter) {
				st.Highlighted = append(st.Highlighted, name)
			}
		}
		if opts.MaxHighlighted > 0 && len(st.Highlighted) > opts.MaxHighlighted {
			st.Highlighted = st.Highlighted[:opts.MaxHighlighted]
		}
	}

	return st
}
