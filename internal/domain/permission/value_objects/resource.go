package value_objects

type Resource string

const (
	ResourceTicket     Resource = "ticket"
	ResourceSettings   Resource = "settings"
	ResourceModeration Resource = "moderation"
	ResourceStats      Resource = "stats"
)

func (r Resource) String() string {
	return string(r)
}
