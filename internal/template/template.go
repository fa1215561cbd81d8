package template

import (
	"strings"
)

// placeholder tokens understood by the built-in templates
const (
	TokenClassName = "CLASS_NAME"
	TokenIDName    = "ID_NAME"
	TokenLabel     = "LABEL"
	TokenYourName  = "YOUR_NAME"
	TokenYourMail  = "YOUR_MAIL"
)

// KnownTokens lists every placeholder token in application order
var KnownTokens = []string{
	TokenClassName,
	TokenIDName,
	TokenLabel,
	TokenYourName,
	TokenYourMail,
}

// Substitution replaces every occurrence of Token with Value
type Substitution struct {
	Token string
	Value string
}

// Substitutions is an ordered token map; order sets match priority
type Substitutions []Substitution

// Get returns the value for token
func (s Substitutions) Get(token string) (string, bool) {
	for _, sub := range s {
		if sub.Token == token {
			return sub.Value, true
		}
	}
	return "", false
}

// Apply replaces all tokens in text in a single pass
//
// Replaced values are never scanned again, so a value containing a token
// string is kept as is. Where tokens overlap, the earlier entry wins. Tokens
// in the template without an entry are left in place.
func Apply(text string, subs Substitutions) string {
	pairs := make([]string, 0, 2*len(subs))
	for _, sub := range subs {
		if sub.Token == "" {
			continue
		}
		pairs = append(pairs, sub.Token, sub.Value)
	}
	if len(pairs) == 0 {
		return text
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// HasToken checks if text contains token
func HasToken(text, token string) bool {
	return token != "" && strings.Contains(text, token)
}

// Unresolved returns the known tokens that occur in text but have no entry in subs
func Unresolved(text string, subs Substitutions) []string {
	var missing []string
	for _, token := range KnownTokens {
		if !HasToken(text, token) {
			continue
		}
		if _, ok := subs.Get(token); !ok {
			missing = append(missing, token)
		}
	}
	return missing
}
