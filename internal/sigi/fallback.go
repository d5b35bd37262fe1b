package sigi

import "strings"

// fallbackRule pairs message substrings with a canned reply. Rules are
// evaluated in order, first match wins; the final rule matches everything.
type fallbackRule struct {
	patterns []string
	reply    string
}

var fallbackRules = []fallbackRule{
	{
		patterns: []string{"hallo", "hi"},
		reply:    "👋 Hallo! Ich bin Sigi, Ihr persönlicher Angel-Experte bei FishMasterKI. Bereit für perfekte Fänge?",
	},
	{
		patterns: []string{"wetter"},
		reply:    "🌤️ Das aktuelle Wetter ist perfekt zum Angeln! Basierend auf den Bedingungen empfehle ich leichte Köder.",
	},
	{
		reply: "🎣 Als Ihr Angel-Buddy helfe ich bei allen Fragen rund ums Fischen. Ausrüstung, Wetteranalyse, Köder-Tipps - fragen Sie einfach!",
	},
}

// FallbackReply produces Sigi's canned answer for a message. Used whenever
// the AI collaborator is unavailable.
func FallbackReply(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range fallbackRules {
		if len(rule.patterns) == 0 {
			return rule.reply
		}
		for _, p := range rule.patterns {
			if strings.Contains(msg, p) {
				return rule.reply
			}
		}
	}
	return fallbackRules[len(fallbackRules)-1].reply
}
