package cargo

import (
	"bufio"
	"bytes"
	"encoding/json"

	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxMessageSize bounds a single JSON message line.
const maxMessageSize = 16 << 20

// message is the subset of cargo's JSON message format used to locate test binaries.
type message struct {
	Reason  string `json:"reason"`
	Profile *struct {
		Test bool `json:"test"`
	} `json:"profile"`
	Filenames []string `json:"filenames"`
}

// MessageParser implements ports.BuildOutputParser for --message-format=json output.
type MessageParser struct{}

// NewMessageParser creates a new MessageParser.
func NewMessageParser() *MessageParser {
	return &MessageParser{}
}

// TestExecutable returns the first filename of the first message whose profile is a test profile.
func (p *MessageParser) TestExecutable(output []byte) (string, bool, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var msg message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return "", false, zerr.With(zerr.Wrap(err, domain.ErrToolchainContractViolation.Error()), "line", line)
		}

		if msg.Profile == nil || !msg.Profile.Test {
			continue
		}
		if len(msg.Filenames) == 0 {
			err := zerr.With(domain.ErrToolchainContractViolation, "reason", "test artifact without filenames")
			return "", false, zerr.With(err, "line", line)
		}
		return msg.Filenames[0], true, nil
	}

	if err := scanner.Err(); err != nil {
		return "", false, zerr.Wrap(err, domain.ErrToolchainContractViolation.Error())
	}

	return "", false, nil
}
