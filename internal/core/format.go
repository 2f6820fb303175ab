package core

import "fmt"

// Formatter produces the presentation text of presence and message
// packets. The Router holds one by composition so deployments can
// localize or template text without touching dispatch logic.
type Formatter interface {
	UserWelcome(c *Client, timestamp int64) string
	UserConnected(c *Client, timestamp int64) string
	UserDisconnected(c *Client, timestamp int64) string
	MessageReceived(from *Client, text string, timestamp int64) string
}

// TemplateFormatter renders presence text from printf-style templates
// taking the client name as the single argument. Message text passes
// through unchanged.
type TemplateFormatter struct {
	WelcomeTemplate      string
	ConnectedTemplate    string
	DisconnectedTemplate string
}

// NewTemplateFormatter returns a formatter with the default plain-text
// templates.
func NewTemplateFormatter() *TemplateFormatter {
	return &TemplateFormatter{
		WelcomeTemplate:      "Welcome %s!",
		ConnectedTemplate:    "%s has connected",
		DisconnectedTemplate: "%s has left",
	}
}

func (f *TemplateFormatter) UserWelcome(c *Client, _ int64) string {
	return fmt.Sprintf(f.WelcomeTemplate, c.Name)
}

func (f *TemplateFormatter) UserConnected(c *Client, _ int64) string {
	return fmt.Sprintf(f.ConnectedTemplate, c.Name)
}

func (f *TemplateFormatter) UserDisconnected(c *Client, _ int64) string {
	return fmt.Sprintf(f.DisconnectedTemplate, c.Name)
}

func (f *TemplateFormatter) MessageReceived(_ *Client, text string, _ int64) string {
	return text
}
