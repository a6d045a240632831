package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/heartmarshall/vaxsim/internal/domain"
	"github.com/heartmarshall/vaxsim/internal/service/batch"
	"github.com/heartmarshall/vaxsim/internal/service/clock"
	"github.com/heartmarshall/vaxsim/internal/service/inoculation"
)

// errMalformed marks a line whose arguments do not have the expected shape.
// Such lines are dropped without output.
var errMalformed = errors.New("malformed command")

// Command names, keyed by the first character of the line.
const (
	cmdCreate        = "create"
	cmdList          = "list"
	cmdApply         = "apply"
	cmdRemove        = "remove"
	cmdDeleteHistory = "delete-history"
	cmdUserHistory   = "user-history"
	cmdTime          = "time"
	cmdQuit          = "quit"
)

var commandNames = map[byte]string{
	'c': cmdCreate,
	'l': cmdList,
	'a': cmdApply,
	'r': cmdRemove,
	'd': cmdDeleteHistory,
	'u': cmdUserHistory,
	't': cmdTime,
	'q': cmdQuit,
}

// commandName resolves the command of a line. Lines are recognized by their
// first character, so "c" and "create" are the same command.
func commandName(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	name, ok := commandNames[line[0]]
	return name, ok
}

// args drops the command word and returns the rest of the line.
func args(line string) string {
	_, rest := nextField(line)
	return rest
}

// parseDateArg parses an optional date argument. A token that is not shaped
// like dd-mm-yyyy becomes the zero Date, which never validates.
func parseDateArg(tok string) *domain.Date {
	d, err := domain.ParseDate(tok)
	if err != nil {
		return &domain.Date{}
	}
	return &d
}

// c <batch> <dd-mm-yyyy> <doses> <name>
func parseCreate(rest string) (batch.CreateBatchInput, error) {
	id, rest := nextField(rest)
	dateTok, rest := nextField(rest)
	dosesTok, rest := nextField(rest)
	name, _ := nextField(rest)
	if name == "" {
		return batch.CreateBatchInput{}, errMalformed
	}

	expiry, err := domain.ParseDate(dateTok)
	if err != nil {
		return batch.CreateBatchInput{}, errMalformed
	}
	doses, err := strconv.Atoi(dosesTok)
	if err != nil {
		return batch.CreateBatchInput{}, errMalformed
	}

	return batch.CreateBatchInput{
		BatchID: id,
		Name:    name,
		Expiry:  expiry,
		Doses:   doses,
	}, nil
}

// l [name...]
func parseList(rest string) batch.ListBatchesInput {
	return batch.ListBatchesInput{Names: strings.Fields(rest)}
}

// a <user> <vaccine>
func parseApply(rest string) (inoculation.ApplyVaccineInput, error) {
	user, rest, err := nextName(rest)
	if err != nil {
		return inoculation.ApplyVaccineInput{}, domain.ErrInvalidName
	}
	vaccine, _ := nextField(rest)
	if vaccine == "" {
		return inoculation.ApplyVaccineInput{}, errMalformed
	}
	return inoculation.ApplyVaccineInput{UserName: user, VaccineName: vaccine}, nil
}

// r <batch>
func parseRemove(rest string) (batch.RemoveBatchInput, error) {
	id, _ := nextField(rest)
	if id == "" {
		return batch.RemoveBatchInput{}, errMalformed
	}
	return batch.RemoveBatchInput{BatchID: id}, nil
}

// d <user> [dd-mm-yyyy] [batch]
func parseDeleteHistory(rest string) (inoculation.DeleteHistoryInput, error) {
	if strings.TrimSpace(rest) == "" {
		return inoculation.DeleteHistoryInput{}, errMalformed
	}
	user, rest, err := nextName(rest)
	if err != nil {
		return inoculation.DeleteHistoryInput{}, domain.NewSubjectError(rest, domain.ErrInvalidName)
	}
	if user == "" {
		return inoculation.DeleteHistoryInput{}, domain.ErrInvalidName
	}

	in := inoculation.DeleteHistoryInput{UserName: user}
	dateTok, rest := nextField(rest)
	if dateTok != "" {
		in.Date = parseDateArg(dateTok)
	}
	if batchTok, _ := nextField(rest); batchTok != "" {
		in.BatchID = &batchTok
	}
	return in, nil
}

// u [user]
func parseUserHistory(rest string) (inoculation.ListHistoryInput, error) {
	if strings.TrimSpace(rest) == "" {
		return inoculation.ListHistoryInput{}, nil
	}
	user, _, err := nextName(rest)
	if err != nil || user == "" {
		return inoculation.ListHistoryInput{}, domain.ErrInvalidName
	}
	return inoculation.ListHistoryInput{UserName: &user}, nil
}

// t [dd-mm-yyyy]
func parseTime(rest string) clock.AdvanceClockInput {
	tok, _ := nextField(rest)
	if tok == "" {
		return clock.AdvanceClockInput{}
	}
	return clock.AdvanceClockInput{Date: parseDateArg(tok)}
}
