package classifier

// Classifier maps free-text requests to a Classification.
type Classifier interface {
	Classify(text string) Classification
}

// KeywordClassifier classifies requests with ordered keyword rules.
type KeywordClassifier struct {
	rules Rules
}

var _ Classifier = (*KeywordClassifier)(nil)

// New creates a KeywordClassifier owning a normalized copy of rules.
func New(rules Rules) (*KeywordClassifier, error) {
	r := rules.normalize()
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &KeywordClassifier{rules: r}, nil
}

// Rules returns a copy of the rules in use.
func (c *KeywordClassifier) Rules() Rules {
	return c.rules.normalize()
}
