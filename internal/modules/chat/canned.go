package chat

import "strings"

// Canned replies used when no language-model credential is configured or
// the upstream call fails. Keyword checks run in a fixed order — greeting
// before price before offer — so a message containing several keywords
// always gets the earliest matching reply.
const (
	greetingReply = "Hi there! Welcome to Yaritu. How can we help you today?"
	priceReply    = "Our pieces start from very accessible prices — check the jewellery page for current pricing and discounts."
	offerReply    = "We run seasonal offers regularly! Keep an eye on the trending section for current discounts."
)

var (
	greetingKeywords = []string{"hi", "hello", "hey"}
	priceKeywords    = []string{"price", "cost", "how much"}
	offerKeywords    = []string{"offer", "discount", "sale"}
)

// CannedReply picks a fixed reply by keyword presence, case-insensitively,
// defaulting to an acknowledgment echo.
func CannedReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, greetingKeywords):
		return greetingReply
	case containsAny(lower, priceKeywords):
		return priceReply
	case containsAny(lower, offerKeywords):
		return offerReply
	default:
		return "Thanks for your message! \"" + strings.TrimSpace(message) + "\" — our team will get back to you shortly."
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if containsWord(lower, kw) {
			return true
		}
	}
	return false
}

// containsWord matches on word boundaries so "hi" never fires inside
// "ship" or "this".
func containsWord(s, word string) bool {
	for i := 0; i+len(word) <= len(s); {
		j := strings.Index(s[i:], word)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(word)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		i = start + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
