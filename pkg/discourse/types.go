package discourse

// Config carries the connection settings shared by every operation. It is
// read-only after the client is constructed.
type Config struct {
	// Host is the forum's hostname (e.g. "talk.example.org"). A scheme may be
	// included; without one, https is assumed.
	Host        string
	APIUsername string
	APIKey      string
}

// User is the platform's user record, passed through undecoded beyond JSON.
type User map[string]any

// Post is the record returned by the grant-badge and send-message endpoints.
type Post map[string]any

// Badge is a named achievement object. The client only interprets its name.
type Badge map[string]any

// Name returns the badge's name field, or "" when absent or not a string.
func (b Badge) Name() string {
	name, _ := b["name"].(string)
	return name
}
