package fanout

import (
	"fmt"
	"strings"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

var kindLabels = map[domain.EmergencyKind]string{
	domain.EmergencyKindManualAlert:   "Manual alert",
	domain.EmergencyKindFallDetection: "Fall detected",
	domain.EmergencyKindGeofenceExit:  "Left safe zone",
}

// buildSubject renders the short alert line shown in push titles and
// SMS/email subjects.
func buildSubject(e *domain.Emergency) string {
	label, ok := kindLabels[e.Kind]
	if !ok {
		label = "Emergency"
	}
	return fmt.Sprintf("[%s] %s", e.Severity, label)
}

// buildBody renders the alert message with whatever context the
// emergency carries.
func buildBody(e *domain.Emergency) string {
	var b strings.Builder
	label, ok := kindLabels[e.Kind]
	if !ok {
		label = "Emergency"
	}
	fmt.Fprintf(&b, "%s for a person in your care at %s.",
		label, e.CreatedAt.Format("15:04 MST, Jan 2"))
	if e.Location != nil {
		if e.Location.Address != "" {
			fmt.Fprintf(&b, " Location: %s.", e.Location.Address)
		} else {
			fmt.Fprintf(&b, " Location: %.5f, %.5f.", e.Location.Latitude, e.Location.Longitude)
		}
	}
	if e.Description != nil && *e.Description != "" {
		fmt.Fprintf(&b, " %s", *e.Description)
	}
	return b.String()
}
