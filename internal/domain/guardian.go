package domain

import "github.com/google/uuid"

// ContactChannels holds the delivery targets a guardian has registered.
// A nil field means the corresponding channel is never attempted for
// that guardian.
type ContactChannels struct {
	PushToken *string
	Phone     *string
	Email     *string
}

// Available returns the channels the guardian can actually be reached on.
func (c ContactChannels) Available() []Channel {
	var out []Channel
	if c.PushToken != nil && *c.PushToken != "" {
		out = append(out, ChannelPush)
	}
	if c.Phone != nil && *c.Phone != "" {
		out = append(out, ChannelSMS)
	}
	if c.Email != nil && *c.Email != "" {
		out = append(out, ChannelEmail)
	}
	return out
}

// Target returns the contact field for the given channel, or "" when the
// guardian has no target registered for it.
func (c ContactChannels) Target(ch Channel) string {
	switch ch {
	case ChannelPush:
		if c.PushToken != nil {
			return *c.PushToken
		}
	case ChannelSMS:
		if c.Phone != nil {
			return *c.Phone
		}
	case ChannelEmail:
		if c.Email != nil {
			return *c.Email
		}
	}
	return ""
}

// GuardianRecipient is the fully resolved, permission-filtered recipient of
// an emergency alert. Immutable for the lifetime of a single fan-out.
// Lower Priority means contacted first.
type GuardianRecipient struct {
	GuardianID  uuid.UUID
	DisplayName string
	Priority    int
	Channels    ContactChannels
}

// DispatchOutcome records the result of a single guardian×channel send
// attempt. Failures are data, not control flow: a broken channel never
// propagates an error across the fan-out boundary.
type DispatchOutcome struct {
	GuardianID uuid.UUID
	Channel    Channel
	Success    bool
	ErrorKind  DispatchErrorKind
}
