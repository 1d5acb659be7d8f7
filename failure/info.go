package failure

import "fmt"

// Info carries the metadata of a single assertion call.
type Info struct {
	description       string
	overridingMessage string
}

// InfoOption configures an Info.
type InfoOption func(*Info)

// WithDescription sets the description printed before the failure message.
func WithDescription(format string, args ...any) InfoOption {
	return func(i *Info) {
		i.description = fmt.Sprintf(format, args...)
	}
}

// WithOverridingMessage replaces the whole failure message.
func WithOverridingMessage(format string, args ...any) InfoOption {
	return func(i *Info) {
		i.overridingMessage = fmt.Sprintf(format, args...)
	}
}

// NewInfo returns the metadata of an assertion call.
func NewInfo(opts ...InfoOption) *Info {
	info := &Info{}
	for _, opt := range opts {
		opt(info)
	}
	return info
}

// Description returns the description. A nil Info has none.
func (i *Info) Description() string {
	if i == nil {
		return ""
	}
	return i.description
}

// OverridingMessage returns the overriding message. A nil Info has none.
func (i *Info) OverridingMessage() string {
	if i == nil {
		return ""
	}
	return i.overridingMessage
}
