package session

import "fmt"

const (
	phonePrompt = "📱 Enter 10-digit mobile number:\nExample: 9945789124\n\nType /cancel or 'Cancel' to stop."
	idPrompt    = "🆔 Enter 12-digit Aadhaar number:\nExample: 123456789012\n\nType /cancel or 'Cancel' to stop."

	invalidPhone = "❌ Invalid number. Please enter a 10-digit mobile number.\n\nType 'Cancel' to stop."
	invalidID    = "❌ Invalid number. Please enter a 12-digit Aadhaar number.\n\nType 'Cancel' to stop."

	usageHint  = "Please send:\n• 10-digit Phone number\n• 12-digit Aadhaar number\n\nOr use the buttons below!"
	cancelled  = "❌ Operation cancelled."
	quickStart = "🚀 Quick Start:\n\n" +
		"For Phone Lookup:\n• Send: 9876543210\n• Use: /phone\n\n" +
		"For Aadhaar Lookup:\n• Send: 123456789012\n• Use: /aadhaar\n\n" +
		"Or use the buttons!"

	helpText = `📘 Help Guide - Multi-Info Bot

📱 Phone Lookup:
- Send 10-digit mobile number
  Example: 9876543210

🆔 Aadhaar Lookup:
- Send 12-digit Aadhaar number
  Example: 123456789012

Quick Commands:
/phone - Phone lookup
/aadhaar - Aadhaar lookup
/help - This message

Or use the buttons below!`

	welcomeBody = `I'm Multi-Info Bot. Get information from multiple sources.

⚠️ Note: This bot is for educational purposes only.
Misuse of the bot or its data is strictly prohibited.
The operator is not responsible for any illegal use.

Choose an option below or send:
- 📱 10-digit phone number
- 🆔 12-digit Aadhaar number

Commands:
/phone - Phone number lookup
/aadhaar - Aadhaar number lookup
/help - Help guide`
)

func welcomeText(name string) string {
	if name == "" {
		return "👋 Welcome!\n\n" + welcomeBody
	}
	return "👋 Welcome " + name + "!\n\n" + welcomeBody
}

// flowLabels name a lookup flow in status lines.
type flowLabels struct {
	searching string // "Searching phone"
	found     string // "Phone data found"
	short     string // "Phone"
}

var (
	phoneLabels = flowLabels{searching: "Searching phone", found: "Phone data found", short: "Phone"}
	idLabels    = flowLabels{searching: "Searching Aadhaar", found: "Aadhaar data found", short: "Aadhaar"}
)

func searchingLine(l flowLabels, number string) string {
	return fmt.Sprintf("🔍 %s: %s...", l.searching, number)
}

func foundLine(l flowLabels, number string) string {
	return fmt.Sprintf("✅ %s: %s", l.found, number)
}

func timeoutLine(l flowLabels) string {
	return fmt.Sprintf("❌ %s lookup timed out. Please try again later.", l.short)
}

func statusLine(l flowLabels, status int) string {
	return fmt.Sprintf("❌ %s API Error - Status: %d", l.short, status)
}

func failedLine(l flowLabels) string {
	return fmt.Sprintf("❌ %s lookup failed. Please try again later.", l.short)
}
