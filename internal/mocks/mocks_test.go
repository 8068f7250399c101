package mocks

import (
	"github.com/seu-repo/vocalis/internal/adapter/queue"
	"github.com/seu-repo/vocalis/internal/ports"
)

// Compile-time checks pinning every mock to the port it stands in for, so
// a signature change on either side surfaces here instead of in consumers.
var (
	_ ports.UserRepository   = (*MockUserRepository)(nil)
	_ ports.AuthService      = (*MockAuthService)(nil)
	_ ports.AssistantService = (*MockAssistantService)(nil)
	_ ports.Interpreter      = (*MockInterpreter)(nil)
	_ ports.MediaUploader    = (*MockMediaUploader)(nil)
	_ ports.EmailService     = (*MockEmailService)(nil)
	_ ports.Cache            = (*MockCache)(nil)
	_ queue.MessageQueue     = (*MockMessageQueue)(nil)
)
