package hostel

import "strings"

var policies = map[string]string{
	"visitor": `**Visitor Policy:**
- Visiting hours: 10:00 AM - 8:00 PM
- All visitors must register at reception
- Valid ID required for entry
- Maximum 2 visitors per student at a time
- Overnight stays not permitted without prior approval
- Visitors cannot access mess without permission`,

	"curfew": `**Entry/Exit Timings:**
- Hostel gates close at 10:30 PM
- Late entry requires permission slip
- Emergency late entry: Contact security
- Weekend curfew extended to 11:30 PM
- Special occasions: Check with warden for extensions`,

	"fees": `**Fee Payment Policy:**
- Mess fees due by 5th of each month
- Room rent due by 1st of each month
- Late payment penalty: Rs.50 per day after due date
- Payment methods: Online, cash at office
- Refunds processed within 15 working days`,

	"room": `**Room Allocation & Transfer:**
- Room changes allowed once per semester
- Transfer requests require valid reason
- New room allocation within 7 days of approval
- Room sharing: Maximum 2 students per room
- Student responsible for room maintenance`,

	"discipline": `**Disciplinary Policy:**
- First violation: Verbal warning
- Second violation: Written warning
- Third violation: Fine or temporary suspension
- Serious violations: Immediate action
- Appeal process: Submit within 7 days to warden`,

	"emergency": `**Emergency Procedures:**
- Fire alarm: Evacuate immediately via nearest exit
- Medical emergency: Contact security (24/7)
- Security issues: Alert security immediately
- Power outage: Contact maintenance
- Emergency contacts posted in all common areas`,
}

// PolicyInfo returns the policy text for a category, with an explicit
// default for unrecognized categories.
func PolicyInfo(category string) string {
	if policy, ok := policies[strings.ToLower(category)]; ok {
		return policy
	}
	return "Policy information not available. Contact hostel office."
}

var procedures = map[string]string{
	"visitor": `1. Visitor brings valid ID to reception
2. Student comes to reception to verify
3. Visitor fills registration form
4. Security issues visitor pass
5. Student escorts visitor to room/common area
6. Visitor returns pass before leaving`,

	"room": `1. Submit room transfer application to warden
2. Provide valid reason (medical, academic, personal)
3. Pay transfer fee (if applicable)
4. Wait for approval (3-5 working days)
5. Receive new room allocation
6. Complete room handover process`,

	"fees": `1. Receive fee payment notice
2. Calculate total amount due
3. Pay via online portal or cash at office
4. Collect payment receipt
5. Verify payment reflects in your account`,
}

// ProcedureSteps returns the step-by-step procedure for a category.
func ProcedureSteps(category string) string {
	if steps, ok := procedures[strings.ToLower(category)]; ok {
		return steps
	}
	return "Contact hostel office for specific procedures."
}

var requiredDocuments = map[string]string{
	"visitor": "Valid government ID (Aadhar, PAN, License)",
	"room":    "Medical certificate (if applicable), Parent consent form",
	"fees":    "Previous payment receipts, Fee structure copy",
}

// RequiredDocuments returns the documents needed for a category's procedure.
func RequiredDocuments(category string) string {
	if docs, ok := requiredDocuments[strings.ToLower(category)]; ok {
		return docs
	}
	return "Check with hostel office for required documents."
}

var processingTimes = map[string]string{
	"visitor": "Immediate (if documents are valid)",
	"room":    "3-5 working days",
	"fees":    "Payment processed immediately",
}

// ProcessingTime returns the expected processing time for a category.
func ProcessingTime(category string) string {
	if t, ok := processingTimes[strings.ToLower(category)]; ok {
		return t
	}
	return "Contact office for timeline information."
}

var commonQuestions = map[string]string{
	"visitor": `- Can visitors eat in mess? (Only with prior permission)
- Can visitors stay overnight? (Not without approval)
- What ID is acceptable? (Government issued photo ID)`,

	"curfew": `- What if I have a medical emergency? (Contact security immediately)
- Can I get late entry for work? (Yes, with employer letter)
- Weekend timings different? (Yes, extended to 11:30 PM)`,

	"fees": `- What if payment is 1 day late? (Rs.50 penalty applies)
- Can I pay in installments? (Contact office for payment plan)
- How to get payment receipt? (Available online or at office)`,
}

// CommonQuestions returns frequently asked clarifications for a category.
func CommonQuestions(category string) string {
	if q, ok := commonQuestions[strings.ToLower(category)]; ok {
		return q
	}
	return "Ask hostel office for clarifications."
}

var policyExceptions = map[string]string{
	"visitor": "Emergency situations, parent visits, official purposes may have relaxed restrictions",
	"curfew":  "Medical emergencies, family emergencies, work requirements with documentation",
	"fees":    "Financial hardship cases may get payment plan options",
}

// PolicyExceptions returns the special cases recognized for a category.
func PolicyExceptions(category string) string {
	if e, ok := policyExceptions[strings.ToLower(category)]; ok {
		return e
	}
	return "Speak with warden about special circumstances."
}
