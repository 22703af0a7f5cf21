package entities

// Role identifies who issued a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one entry of a conversation history.
//
// Histories are append-only and replayed by the client on every request;
// the service never stores them between turns.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// UserContents returns the content of the user messages in history order.
func UserContents(history []Message) []string {
	out := make([]string, 0, len(history)/2+1)
	for _, m := range history {
		if m.Role == RoleUser {
			out = append(out, m.Content)
		}
	}
	return out
}

// CountAssistant returns how many assistant messages history holds.
func CountAssistant(history []Message) int {
	n := 0
	for _, m := range history {
		if m.Role == RoleAssistant {
			n++
		}
	}
	return n
}
