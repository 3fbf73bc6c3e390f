package analytics

import (
	"regexp"
	"strings"
)

// Well-known partners keep their real (or real-looking) stock tickers.
var tickerTable = map[string]string{
	"Google":         "GOOGL",
	"Meta":           "META",
	"Facebook":       "META",
	"Microsoft":      "MSFT",
	"Amazon":         "AMZN",
	"Apple":          "AAPL",
	"Netflix":        "NFLX",
	"Tesla":          "TSLA",
	"Snapchat":       "SNAP",
	"Twitter":        "TWTR",
	"LinkedIn":       "LNKD",
	"Pinterest":      "PINS",
	"TikTok":         "TKTK",
	"YouTube":        "YTBE",
	"Instagram":      "INST",
	"WhatsApp":       "WHAP",
	"Spotify":        "SPOT",
	"Uber":           "UBER",
	"Airbnb":         "ABNB",
	"The Trade Desk": "TTD",
	"Trade Desk":     "TTD",
	"Adobe":          "ADBE",
	"Salesforce":     "CRM",
	"Oracle":         "ORCL",
	"IBM":            "IBM",
	"Intel":          "INTC",
	"NVIDIA":         "NVDA",
	"AMD":            "AMD",
	"Roku":           "ROKU",
	"Disney":         "DIS",
	"Paramount":      "PARA",
	"Warner Bros":    "WBD",
	"Comcast":        "CMCSA",
	"Verizon":        "VZ",
	"AT&T":           "T",
}

var (
	corpSuffixRe = regexp.MustCompile(`(?i)\b(Inc|LLC|Corp|Corporation|Company|Co|Ltd|Limited|Group|Media|Digital|Marketing|Advertising|Agency|Solutions|Technologies|Tech|Systems|Services|Partners|Holdings)\b`)
	wordSplitRe  = regexp.MustCompile(`[\s\-_.]+`)
)

// Ticker synthesizes a short uppercase stock-style symbol from a partner
// name. Deterministic: the same name always yields the same ticker.
func Ticker(partner string) string {
	if partner == "" {
		return "UNK"
	}
	if t, ok := tickerTable[partner]; ok {
		return t
	}

	clean := strings.TrimSpace(corpSuffixRe.ReplaceAllString(partner, ""))

	var words []string
	for _, w := range wordSplitRe.Split(clean, -1) {
		if w != "" {
			words = append(words, w)
		}
	}

	switch len(words) {
	case 0:
		return strings.ToUpper(firstN(partner, 4))
	case 1:
		w := []rune(words[0])
		if len(w) <= 4 {
			return strings.ToUpper(words[0])
		}
		return strings.ToUpper(string(w[:2]) + string(w[len(w)-2:]))
	case 2:
		first, second := words[0], words[1]
		if len([]rune(first)) >= 2 && len([]rune(second)) >= 2 {
			return strings.ToUpper(firstN(first, 2) + firstN(second, 2))
		}
		return strings.ToUpper(firstN(first, 3) + firstN(second, 1))
	case 3:
		// Initials of the three words plus the second letter of the first.
		s := firstN(words[0], 1) + firstN(words[1], 1) + firstN(words[2], 1)
		if r := []rune(words[0]); len(r) >= 2 {
			s += string(r[1])
		}
		return strings.ToUpper(s)
	}

	var b strings.Builder
	for _, w := range words[:4] {
		b.WriteString(firstN(w, 1))
	}
	return strings.ToUpper(b.String())
}

func firstN(s string, n int) string {
	r := []rune(s)
	if len(r) < n {
		return s
	}
	return string(r[:n])
}
