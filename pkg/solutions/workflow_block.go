package solutions

import (
	"regexp"
	"strings"

	"github.com/solutionops/solutions-check/pkg/constants"
	"github.com/solutionops/solutions-check/pkg/fileutil"
	"github.com/solutionops/solutions-check/pkg/logger"
	"github.com/solutionops/solutions-check/pkg/sliceutil"
)

var workflowBlockLog = logger.New("solutions:workflow_block")

// BlockSpec describes how a generated options block is delimited and which
// option stands for "no selection".
type BlockSpec struct {
	start    *regexp.Regexp
	end      *regexp.Regexp
	sentinel string
}

// NewBlockSpec builds a BlockSpec for the given marker words.
func NewBlockSpec(start, end constants.Marker, sentinel string) *BlockSpec {
	return &BlockSpec{
		start:    regexp.MustCompile(start.Pattern()),
		end:      regexp.MustCompile(end.Pattern()),
		sentinel: sentinel,
	}
}

// DefaultBlockSpec matches the GENERATED-OPTIONS-START/END markers with the <none> sentinel.
func DefaultBlockSpec() *BlockSpec {
	return NewBlockSpec(constants.GeneratedOptionsStart, constants.GeneratedOptionsEnd, constants.NoneOption)
}

// OptionBlock is the generated block found in one workflow file.
// StartLine and EndLine are zero-based marker line indexes. Options holds
// every list item between them in file order, sentinel included.
type OptionBlock struct {
	StartLine int
	EndLine   int
	Options   []string
}

// ExtractOptionBlock locates the first start and first end marker in lines
// and returns the list items strictly between them. path is only used to
// label a *MarkerError.
func (s *BlockSpec) ExtractOptionBlock(path string, lines []string) (*OptionBlock, error) {
	startLine := firstMatch(lines, s.start)
	endLine := firstMatch(lines, s.end)
	workflowBlockLog.Printf("Markers in %s: start=%d, end=%d", path, startLine, endLine)

	if startLine < 0 || endLine < 0 {
		return nil, &MarkerError{Path: path, Reason: MarkersMissing, StartLine: startLine, EndLine: endLine}
	}
	if endLine <= startLine {
		return nil, &MarkerError{Path: path, Reason: MarkersMalformed, StartLine: startLine, EndLine: endLine}
	}

	block := &OptionBlock{StartLine: startLine, EndLine: endLine, Options: []string{}}
	for _, line := range lines[startLine+1 : endLine] {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, constants.OptionItemPrefix) {
			continue
		}
		_, value, _ := strings.Cut(trimmed, constants.OptionItemPrefix)
		block.Options = append(block.Options, strings.TrimSpace(value))
	}
	return block, nil
}

// Selectable returns the distinct options of block other than the sentinel, sorted.
func (s *BlockSpec) Selectable(block *OptionBlock) []string {
	return sliceutil.SortedUnique(sliceutil.Without(block.Options, s.sentinel))
}

// WorkflowResult is the outcome of checking one workflow file.
type WorkflowResult struct {
	Path    string   `json:"path"`
	Options []string `json:"options"`
	Error   string   `json:"error,omitempty"`
}

// CheckWorkflow verifies that the generated block in the workflow at
// filePath lists exactly the expected solutions. path is the name used in
// messages; filePath is where the file is read from.
func (s *BlockSpec) CheckWorkflow(path, filePath string, expected []string) (*WorkflowResult, error) {
	result := &WorkflowResult{Path: path, Options: []string{}}

	if !fileutil.FileExists(filePath) {
		return result.fail(&MissingWorkflowError{Path: path})
	}

	lines, err := fileutil.ReadLines(filePath)
	if err != nil {
		return result.fail(err)
	}

	block, err := s.ExtractOptionBlock(path, lines)
	if err != nil {
		return result.fail(err)
	}

	result.Options = s.Selectable(block)
	want := sliceutil.SortedUnique(expected)
	if !sliceutil.SetEqual(result.Options, want) {
		return result.fail(&OptionMismatchError{Path: path, Got: result.Options, Expected: want})
	}

	workflowBlockLog.Printf("Workflow in sync: %s (%d options)", path, len(result.Options))
	return result, nil
}

func (r *WorkflowResult) fail(err error) (*WorkflowResult, error) {
	r.Error = err.Error()
	return r, err
}

func firstMatch(lines []string, re *regexp.Regexp) int {
	for i, line := range lines {
		if re.MatchString(line) {
			return i
		}
	}
	return -1
}
