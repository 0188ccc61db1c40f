package wizard

// Choice is one selectable option. Token travels back through the transport
// as the callback payload and is decoded into a typed event.
type Choice struct {
	Label string
	Token string
}

// Tokens produced by the engine and understood by the transport decoder.
const (
	TokenLangPrefix    = "lang_"
	TokenRolePrefix    = "role_"
	TokenBranchPrefix  = "branch_"
	TokenSettingPrefix = "setting_"
	TokenSettings      = "settings"
	TokenBack          = "back"
	TokenBackToMain    = "back_to_main"
)

// Action is an outbound instruction for the messaging channel.
type Action interface {
	Recipient() int64
}

// Prompt asks the user for the next input. At most one keyboard kind is set:
// inline choices, a reply keyboard, or a request to drop the reply keyboard.
type Prompt struct {
	UserID       int64
	Text         string
	Choices      [][]Choice
	ReplyButtons []string
	RemoveReply  bool
}

// Confirmation is a terminal rendering with a deep link into the mini-app.
type Confirmation struct {
	UserID    int64
	Text      string
	LinkLabel string
	LinkURL   string
	Choices   [][]Choice
}

func (p Prompt) Recipient() int64       { return p.UserID }
func (c Confirmation) Recipient() int64 { return c.UserID }
