package hostel

import "strings"

// FacilityState is the coarse operational state of a facility.
type FacilityState string

const (
	StateOperational FacilityState = "operational"
	StateMaintenance FacilityState = "maintenance"
	StateOutage      FacilityState = "outage"
	StateUnknown     FacilityState = "unknown"
)

// Status is a snapshot of a facility's current condition. The data is a
// static simulated table, not a live sensor feed.
type Status struct {
	State            FacilityState
	LastUpdated      string
	NextCheck        string
	AffectedAreas    string
	EmergencyContact string
}

var facilityStatuses = map[string]Status{
	"power": {
		State:            StateOperational,
		LastUpdated:      "30 minutes ago",
		NextCheck:        "Every 6 hours",
		AffectedAreas:    "None",
		EmergencyContact: "Electrician: +91-XXXXXXXXXX",
	},
	"water": {
		State:            StateOperational,
		LastUpdated:      "1 hour ago",
		NextCheck:        "Every 4 hours",
		AffectedAreas:    "None",
		EmergencyContact: "Plumber: +91-XXXXXXXXXX",
	},
	"internet": {
		State:            StateOperational,
		LastUpdated:      "15 minutes ago",
		NextCheck:        "Every 2 hours",
		AffectedAreas:    "None",
		EmergencyContact: "IT Support: +91-XXXXXXXXXX",
	},
}

// CurrentStatus returns the status snapshot for a facility type. "wifi"
// aliases internet; anything unrecognized gets the unknown entry.
func CurrentStatus(facilityType string) Status {
	key := strings.ToLower(facilityType)
	if key == "wifi" {
		key = "internet"
	}
	if status, ok := facilityStatuses[key]; ok {
		return status
	}
	return Status{
		State:            StateUnknown,
		LastUpdated:      "Check with office",
		NextCheck:        "Check with office",
		AffectedAreas:    "Unknown",
		EmergencyContact: "Hostel Office: +91-XXXXXXXXXX",
	}
}

// MaintenanceSchedule describes planned maintenance windows for a facility.
type MaintenanceSchedule struct {
	ThisWeek string
	NextWeek string
	Regular  string
}

var maintenanceSchedules = map[string]MaintenanceSchedule{
	"power": {
		ThisWeek: "- Sunday 6:00 AM - 8:00 AM: Generator testing\n- No other scheduled work",
		NextWeek: "- Wednesday 2:00 PM - 4:00 PM: Electrical panel maintenance",
		Regular:  "Monthly generator maintenance, Weekly electrical checks",
	},
	"water": {
		ThisWeek: "- Monday 5:00 AM - 7:00 AM: Water tank cleaning (Block A)\n- No disruption expected",
		NextWeek: "- Thursday 6:00 AM - 10:00 AM: Pump maintenance",
		Regular:  "Weekly tank cleaning rotation, Monthly pump servicing",
	},
	"internet": {
		ThisWeek: "- No scheduled maintenance",
		NextWeek: "- Saturday 11:00 PM - 1:00 AM: Server updates",
		Regular:  "Monthly router updates, Quarterly network optimization",
	},
}

// MaintenanceFor returns the maintenance schedule for a facility type.
func MaintenanceFor(facilityType string) MaintenanceSchedule {
	if schedule, ok := maintenanceSchedules[strings.ToLower(facilityType)]; ok {
		return schedule
	}
	return MaintenanceSchedule{
		ThisWeek: "No information available",
		NextWeek: "Check with office",
		Regular:  "Contact office for schedule",
	}
}

var serviceHours = map[string]string{
	"power":    "24/7 availability, Maintenance team: 8:00 AM - 8:00 PM",
	"water":    "24/7 supply, Plumber available: 7:00 AM - 9:00 PM",
	"internet": "24/7 connectivity, IT support: 9:00 AM - 6:00 PM",
}

// ServiceHours returns the service-hours line for a facility type.
func ServiceHours(facilityType string) string {
	if hours, ok := serviceHours[strings.ToLower(facilityType)]; ok {
		return hours
	}
	return "Contact office for service hours"
}

var normalOperations = map[string]string{
	"power":    "Continuous supply with automatic generator backup during grid failures",
	"water":    "Continuous supply from overhead tanks, refilled twice daily",
	"internet": "Shared WiFi across all blocks with wired points in study halls",
}

// NormalOperations describes what normal service looks like for a facility.
func NormalOperations(facilityType string) string {
	if ops, ok := normalOperations[strings.ToLower(facilityType)]; ok {
		return ops
	}
	return "Contact office for service details"
}

var reportingGuides = map[string]string{
	"power": `- Note which lights/outlets not working
- Check if neighbors have same issue
- Don't touch exposed wires
- Report immediately if sparks/burning smell`,

	"water": `- Check if issue is in your room only or building-wide
- Note water pressure level
- Report leaks immediately
- Don't attempt repairs yourself`,

	"internet": `- Test on multiple devices
- Note error messages
- Check if WiFi shows up in available networks
- Try restarting your device first`,
}

// ReportingGuide returns facility-specific guidance for reporting an issue.
func ReportingGuide(facilityType string) string {
	if guide, ok := reportingGuides[strings.ToLower(facilityType)]; ok {
		return guide
	}
	return "Contact office with detailed description"
}

var troubleshootingTips = map[string]string{
	"power": `- Check main switch in your room
- Verify other rooms have power
- Check circuit breaker panel
- Don't overload outlets`,

	"water": `- Check if taps in other areas work
- Verify water motor is running
- Check for visible leaks
- Clean tap filters regularly`,

	"internet": `- Restart WiFi router if accessible
- Check device WiFi settings
- Try connecting closer to router
- Clear browser cache`,
}

// TroubleshootingTips returns self-help tips for a facility type.
func TroubleshootingTips(facilityType string) string {
	if tips, ok := troubleshootingTips[strings.ToLower(facilityType)]; ok {
		return tips
	}
	return "Contact technical support for help"
}

var facilityContacts = map[string]string{
	"power":    "Electrician: +91-XXXXXXXXXX, Hostel Office: +91-XXXXXXXXXX",
	"water":    "Plumber: +91-XXXXXXXXXX, Hostel Office: +91-XXXXXXXXXX",
	"internet": "IT Support: +91-XXXXXXXXXX, Network Admin: +91-XXXXXXXXXX",
}

// ContactInfo returns who to contact for a facility type.
func ContactInfo(facilityType string) string {
	if contact, ok := facilityContacts[strings.ToLower(facilityType)]; ok {
		return contact
	}
	return "Hostel Office: +91-XXXXXXXXXX"
}

var serviceStandards = map[string]string{
	"power":    "- 99.5% uptime target\n- Emergency repairs within 2 hours\n- Planned outages with 48hr notice",
	"water":    "- 24/7 supply commitment\n- Pressure maintained 20-40 PSI\n- Quality testing monthly",
	"internet": "- 50 Mbps minimum speed\n- 99% uptime target\n- Support response within 4 hours",
}

// ServiceStandards returns the published service standards for a facility.
func ServiceStandards(facilityType string) string {
	if standards, ok := serviceStandards[strings.ToLower(facilityType)]; ok {
		return standards
	}
	return "Contact office for service standards"
}
