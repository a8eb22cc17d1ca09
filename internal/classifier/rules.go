package classifier

import (
	"fmt"
	"strings"
)

// Rules is the keyword configuration of a Classifier. A Classifier keeps its
// own copy, so mutating a Rules value after New has no effect.
type Rules struct {
	// QuestionLeads are matched as prefixes of the request.
	QuestionLeads []string
	// DataMarkers suppress the question-form override when present.
	DataMarkers []string

	ExternalData []string
	Image        []string
	Document     []string
	Text         []string
}

// Languages with a built-in rule set.
const (
	LanguagePortuguese = "pt"
	LanguageEnglish    = "en"
)

// DefaultRules returns the built-in rule set for lang.
func DefaultRules(lang string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", LanguagePortuguese:
		return portugueseRules(), nil
	case LanguageEnglish:
		return englishRules(), nil
	default:
		return Rules{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
}

func portugueseRules() Rules {
	return Rules{
		QuestionLeads: []string{"qual", "quais", "quando", "como", "por que", "porque", "onde", "quem", "o que"},
		DataMarkers:   []string{"api", "endpoint"},
		ExternalData:  []string{"buscar", "api", "dados", "endpoint", "consultar", "busque", "obter", "pegar"},
		Image:         []string{"imagem", "foto", "ilustração", "desenho", "arte", "visual", "banner"},
		Document:      []string{"relatório", "documento", "whitepaper", "análise", "estudo", "pesquisa"},
		Text:          []string{"criar", "gerar", "escrever", "campanha", "slogan", "anúncio", "publicidade", "texto", "post"},
	}
}

func englishRules() Rules {
	return Rules{
		QuestionLeads: []string{"what", "which", "when", "how", "why", "where", "who"},
		DataMarkers:   []string{"api", "endpoint"},
		ExternalData:  []string{"fetch", "look up", "query", "retrieve", "get data", "api", "endpoint"},
		Image:         []string{"image", "photo", "illustration", "drawing", "artwork", "visual", "banner"},
		Document:      []string{"report", "document", "whitepaper", "analysis", "study", "research"},
		Text:          []string{"create", "generate", "write", "campaign", "slogan", "ad", "advertisement", "text", "post"},
	}
}

// Override returns a copy of r where every non-empty list in o replaces the
// corresponding list of r.
func (r Rules) Override(o Rules) Rules {
	pick := func(base, over []string) []string {
		if len(over) > 0 {
			return over
		}
		return base
	}
	return Rules{
		QuestionLeads: pick(r.QuestionLeads, o.QuestionLeads),
		DataMarkers:   pick(r.DataMarkers, o.DataMarkers),
		ExternalData:  pick(r.ExternalData, o.ExternalData),
		Image:         pick(r.Image, o.Image),
		Document:      pick(r.Document, o.Document),
		Text:          pick(r.Text, o.Text),
	}
}

// normalize lowercases, trims and copies every list, dropping empty keywords.
func (r Rules) normalize() Rules {
	clean := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, kw := range in {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				out = append(out, kw)
			}
		}
		return out
	}
	return Rules{
		QuestionLeads: clean(r.QuestionLeads),
		DataMarkers:   clean(r.DataMarkers),
		ExternalData:  clean(r.ExternalData),
		Image:         clean(r.Image),
		Document:      clean(r.Document),
		Text:          clean(r.Text),
	}
}

func (r Rules) validate() error {
	if len(r.ExternalData) == 0 || len(r.Image) == 0 || len(r.Document) == 0 || len(r.Text) == 0 {
		return ErrEmptyKeywordSet
	}
	return nil
}
