package service

import "strings"

// intentGroup pairs a keyword set with its canned response. Groups are
// evaluated in declaration order and the first match wins; there is no
// scoring across groups. Confidence is pre-assigned per group, not computed.
type intentGroup struct {
	name       string
	keywords   []string
	response   string
	confidence float64
}

// fallbackConfidence is returned when no keyword group matches.
const fallbackConfidence = 0.72

const fallbackResponse = "I understand your query. For detailed assistance on this topic, I recommend:\n\n" +
	"1. **Check the Student Handbook** available in the admin portal\n" +
	"2. **Visit the Admin Office** (Block A, Room 101) during working hours\n" +
	"3. **Email:** helpdesk@engineering.edu\n\n" +
	"Would you like me to help you escalate this to a human advisor?"

// intentGroups is the ordered lookup table backing the assistant. Changing
// keyword sets or ordering changes which reply a query resolves to.
var intentGroups = []intentGroup{
	{
		name:     "fee",
		keywords: []string{"fee", "payment", "cost"},
		response: "**Fee Structure for B.Tech Year 1:**\n\n" +
			"- Tuition Fee: ₹85,000/semester\n" +
			"- Development Fee: ₹15,000/year\n" +
			"- Library Fee: ₹2,000/year\n" +
			"- Hostel (optional): ₹45,000/year\n\n" +
			"**Payment Modes:** Online (Net Banking, UPI, Cards) via the ERP portal.\n\n" +
			"Late payment attracts a fine of ₹500/week after due date.\n\n" +
			"Would you like help with the payment process?",
		confidence: 0.96,
	},
	{
		name:     "document",
		keywords: []string{"doc", "certificate", "upload"},
		response: "**Required Documents for Onboarding:**\n\n" +
			"**Academic:**\n" +
			"- 10th & 12th Marksheets (originals + 2 copies)\n" +
			"- Entrance Exam Scorecard\n" +
			"- Transfer Certificate\n\n" +
			"**Identity:**\n" +
			"- Aadhar Card\n" +
			"- 6 Passport-size photos\n\n" +
			"**Medical:**\n" +
			"- Medical Fitness Certificate\n\n" +
			"All documents must be uploaded as **clear PDF/JPG** files (max 5MB each).",
		confidence: 0.98,
	},
	{
		name:     "hostel",
		keywords: []string{"hostel", "room", "accommodation"},
		response: "**Hostel Information:**\n\n" +
			"The hostel allotment is done based on preferences submitted in the hostel form.\n\n" +
			"**Hostels Available:**\n" +
			"- Bharat Bhavan (Boys) - 300 seats\n" +
			"- Shakti Bhavan (Girls) - 250 seats\n\n" +
			"**Fees:** ₹45,000/year (includes mess)\n\n" +
			"**Deadline:** August 5, 2024",
		confidence: 0.91,
	},
	{
		name:     "deadline",
		keywords: []string{"deadline", "due", "date", "overdue"},
		response: "**Your Upcoming Deadlines:**\n\n" +
			"Check the Tasks page for your full deadline list. Overdue items are " +
			"highlighted first.\n\n" +
			"**Tip:** Prioritize any overdue task first and contact Admin to resolve " +
			"blocked items.",
		confidence: 0.99,
	},
	{
		name:     "course",
		keywords: []string{"course", "register", "subject"},
		response: "**Course Registration Guide:**\n\n" +
			"1. Login to the **ERP Portal** at erp.engineering.edu\n" +
			"2. Navigate to **Academic → Course Registration**\n" +
			"3. Select your **mandatory core courses** for Sem 1\n" +
			"4. Choose 1-2 **electives** from the available list\n" +
			"5. Submit and take a **printout** for records\n\n" +
			"**Registration opens:** August 1 | **Deadline:** August 12",
		confidence: 0.94,
	},
	{
		name:     "status",
		keywords: []string{"status", "progress", "complete"},
		response: "**Your Onboarding Status:**\n\n" +
			"Open your Dashboard for the live progress breakdown: completed, " +
			"in-progress, overdue and pending tasks, plus document verification " +
			"counts.\n\n" +
			"**Next Action:** resolve any rejected documents and overdue tasks first.",
		confidence: 0.99,
	},
}

// MatchIntent resolves a free-text query against the ordered keyword table.
// The query is lowercased and each group's keywords are tested by substring
// containment; the first matching group wins. Queries that match nothing get
// the fallback response offering an escalation path.
func MatchIntent(query string) (group, content string, confidence float64) {
	q := strings.ToLower(query)
	for _, g := range intentGroups {
		for _, keyword := range g.keywords {
			if strings.Contains(q, keyword) {
				return g.name, g.response, g.confidence
			}
		}
	}
	return "fallback", fallbackResponse, fallbackConfidence
}
