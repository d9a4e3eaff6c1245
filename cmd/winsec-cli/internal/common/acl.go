package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ivan-rueda-duarte/winsec/pkg/windows/acl"
	"github.com/spf13/cobra"
)

// ReadACL reads a JSON encoded ACL from path.
func ReadACL(path string) (*acl.List, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.New("incorrect path to file with ACL")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read file with ACL: %w", err)
	}

	l := new(acl.List)
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("can't parse JSON encoded ACL: %w", err)
	}

	PrintVerbose("Parsed JSON encoded ACL from %s", path)

	return l, nil
}

// WriteACL writes the JSON encoded list to the file at path, or to the
// command stdout when path is empty.
func WriteACL(cmd *cobra.Command, l *acl.List, path string) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err := json.Indent(buf, data, "", "  "); err != nil {
		return err
	}

	if len(path) == 0 {
		cmd.Println(buf)
		return nil
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
