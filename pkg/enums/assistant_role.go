package enums

import "fmt"

// AssistantRole identifies the author of a chat widget message.
type AssistantRole string

const (
	AssistantRoleUser      AssistantRole = "user"
	AssistantRoleAssistant AssistantRole = "ai"
)

var validAssistantRoles = []AssistantRole{
	AssistantRoleUser,
	AssistantRoleAssistant,
}

// IsValid reports whether the value matches a known assistant role.
func (r AssistantRole) IsValid() bool {
	for _, candidate := range validAssistantRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseAssistantRole converts the raw string to AssistantRole.
func ParseAssistantRole(value string) (AssistantRole, error) {
	for _, candidate := range validAssistantRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid assistant role %q", value)
}
