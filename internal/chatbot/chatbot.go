package chatbot

import "strings"

// rule maps a keyword to its canned reply. Rules are evaluated in order
// and the first keyword contained in the input wins, so the order below
// is part of the contract.
type rule struct {
	keyword string
	reply   string
}

var rules = []rule{
	{"how", "Navigate using the sidebar — Home, Items, Requests, Messages, Rates, Profile."},
	{"rate", "Check the Rate List section — rates vary by material and junkshop."},
	{"message", "Use the Messages tab to contact junkshops or households."},
	{"request", "Create a collection request from the Requests tab and provide pickup address."},
}

// Fallback is returned when no keyword matches.
const Fallback = "I can help with navigation, rates, messages, and requests. What would you like to know?"

// Reply returns the canned response for a message. Matching is a
// case-insensitive substring test, first match wins.
func Reply(message string) string {
	text := strings.ToLower(message)
	for _, r := range rules {
		if strings.Contains(text, r.keyword) {
			return r.reply
		}
	}
	return Fallback
}
