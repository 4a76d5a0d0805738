package options

import (
	"errors"
	"fmt"
	"strconv"
)

// ReorderOptions
type ReorderOptions struct {
	List string
	From int
	To   int
}

// Parse reads "<list> <from> <to>".
func (o *ReorderOptions) Parse(args []string) error {
	if len(args) != 3 {
		return errors.New("requires a list, a from index and a to index")
	}
	from, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid from index %q", args[1])
	}
	to, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid to index %q", args[2])
	}
	o.List, o.From, o.To = args[0], from, to
	return nil
}
