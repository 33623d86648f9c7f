// Package contact implements the contact form. Submissions are simulated:
// nothing leaves the process.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/nmbk-site/internal/config"
	"github.com/iburimskiy/nmbk-site/internal/logging"
)

var (
	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("form busy")
	// ErrInvalidField wraps per-field validation failures.
	ErrInvalidField = errors.New("invalid field")
)

// Status is the submission state.
type Status int

const (
	Idle Status = iota
	Loading
	Success
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ButtonLabel is the submit button caption for the status.
func (s Status) ButtonLabel() string {
	switch s {
	case Loading:
		return "Sending..."
	case Success:
		return "Message Sent!"
	}
	return "Send Message"
}

// Field identifies one input.
type Field int

const (
	Name Field = iota
	Email
	Message
	fieldCount
)

// Fields lists the inputs in tab order.
var Fields = []Field{Name, Email, Message}

// Label is the floating input label.
func (f Field) Label() string {
	switch f {
	case Name:
		return "Full Name"
	case Email:
		return "Email Address"
	case Message:
		return "Message"
	}
	return ""
}

// Sent is called once per successful submission.
type Sent func(name, email string)

// Form holds the inputs and drives idle → loading → success → idle from
// the frame clock.
type Form struct {
	values  [fieldCount]string
	focus   Field
	status  Status
	until   time.Time
	onSent  Sent
	log     *zap.Logger
	loading time.Duration
	success time.Duration
}

// NewForm returns an empty idle form.
func NewForm(onSent Sent, log *zap.Logger) *Form {
	log = logging.OrNop(log)
	return &Form{
		onSent:  onSent,
		log:     log,
		loading: config.ContactLoading,
		success: config.ContactSuccess,
	}
}

// Status returns the submission state.
func (f *Form) Status() Status { return f.status }

// Value returns the text of field.
func (f *Form) Value(field Field) string { return f.values[field] }

// SetValue replaces the text of field.
func (f *Form) SetValue(field Field, v string) { f.values[field] = v }

// Focus returns the focused field.
func (f *Form) Focus() Field { return f.focus }

// SetFocus focuses field.
func (f *Form) SetFocus(field Field) {
	if field >= 0 && field < fieldCount {
		f.focus = field
	}
}

// FocusNext moves focus to the next field, wrapping around.
func (f *Form) FocusNext() { f.focus = (f.focus + 1) % fieldCount }

// Type appends runes to the focused field.
func (f *Form) Type(rs []rune) {
	if f.status != Idle || len(rs) == 0 {
		return
	}
	f.values[f.focus] += string(rs)
}

// Backspace deletes the last rune of the focused field.
func (f *Form) Backspace() {
	if f.status != Idle {
		return
	}
	r := []rune(f.values[f.focus])
	if len(r) > 0 {
		f.values[f.focus] = string(r[:len(r)-1])
	}
}

// Validate checks that every field is filled in and the email looks like
// an address.
func (f *Form) Validate() error {
	for _, field := range Fields {
		if strings.TrimSpace(f.values[field]) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidField, field.Label())
		}
	}
	email := strings.TrimSpace(f.values[Email])
	at := strings.Index(email, "@")
	if at <= 0 || !strings.Contains(email[at+1:], ".") || strings.HasSuffix(email, ".") {
		return fmt.Errorf("%w: %q is not an email address", ErrInvalidField, email)
	}
	return nil
}

// Submit starts a simulated send. It fails while a previous submission is
// still in flight or showing its success state.
func (f *Form) Submit(now time.Time) error {
	if f.status != Idle {
		return ErrBusy
	}
	if err := f.Validate(); err != nil {
		return err
	}
	f.status = Loading
	f.until = now.Add(f.loading)
	f.log.Debug("contact form submitted")
	return nil
}

// Advance applies the timed transitions that are due at now.
func (f *Form) Advance(now time.Time) {
	switch f.status {
	case Loading:
		if now.Before(f.until) {
			return
		}
		f.status = Success
		f.until = f.until.Add(f.success)
		name, email := strings.TrimSpace(f.values[Name]), strings.TrimSpace(f.values[Email])
		f.values = [fieldCount]string{}
		f.focus = Name
		f.log.Info("contact message sent", zap.String("email", email))
		if f.onSent != nil {
			f.onSent(name, email)
		}
		f.Advance(now)
	case Success:
		if now.Before(f.until) {
			return
		}
		f.status = Idle
	}
}
