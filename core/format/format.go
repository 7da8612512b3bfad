// Package format renders the uniform Response contract into the final text
// shown to the student. The transform is deterministic and order-preserving:
// urgency banner, body, form link, numbered next steps, and an emergency
// contact line for urgent replies. It also owns the fixed greeting and
// failure cards.
package format

import (
	"fmt"
	"strings"

	"github.com/adalundhe/hostelbuddy/core/agents"
)

// EmergencyContact is appended to every urgent reply.
const EmergencyContact = "+91-XXXXXXXXXX"

var urgencyBanners = map[agents.Urgency]string{
	agents.UrgencyUrgent: "🚨 **URGENT**",
	agents.UrgencyHigh:   "⚠️ **HIGH PRIORITY**",
	agents.UrgencyMedium: "📝 **MEDIUM PRIORITY**",
	agents.UrgencyLow:    "ℹ️ **INFO**",
}

// Render produces the final formatted text for a Response. Field order is
// fixed: banner, content, form link, next steps, emergency line.
func Render(resp *agents.Response) string {
	var b strings.Builder

	if banner, ok := urgencyBanners[resp.Urgency]; ok {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	b.WriteString(resp.Content)

	if resp.FormLink != "" {
		b.WriteString("\n\n📝 **Complete this form to proceed:**\n")
		b.WriteString(resp.FormLink)
	}

	if len(resp.NextSteps) > 0 {
		b.WriteString("\n\n📋 **Next Steps:**")
		for i, step := range resp.NextSteps {
			b.WriteString(fmt.Sprintf("\n%d. %s", i+1, step))
		}
	}

	if resp.Urgency == agents.UrgencyUrgent {
		b.WriteString(fmt.Sprintf("\n\n🆘 **For immediate assistance, contact hostel office directly: %s**", EmergencyContact))
	}

	return b.String()
}

// Failure renders a caller-facing failure card. Every failure carries
// actionable guidance; a bare technical error never reaches the student.
func Failure(message string) string {
	return fmt.Sprintf(`❌ **Error Processing Request**

%s

**What you can do:**
1. Try rephrasing your question
2. Provide more specific details
3. Contact hostel office directly: %s

**Common issues:**
- Image too large (max 10MB)
- Unclear question type
- Network connectivity problems`, message, EmergencyContact)
}

// Greeting renders the HostelBuddy welcome card shown for general queries
// and the help command.
func Greeting() string {
	return `🏠 **Welcome to HostelBuddy!**

I'm your AI assistant for all hostel-related needs. I can help you with:

🔧 **Complaints & Repairs**
- Electrical, plumbing, furniture issues
- Room problems and maintenance requests

🔍 **Lost & Found**
- Report lost items
- Register found items

🍽️ **Mess Services**
- Today's menu and timings
- Food feedback and complaints

📋 **Rules & Policies**
- Hostel rules and procedures
- Visitor policies and curfew information

📊 **Facility Status**
- Power, water, internet status
- Maintenance schedules

**How to use:**
Just describe your issue or question in plain English. You can also upload photos for better assistance!

What can I help you with today?`
}
