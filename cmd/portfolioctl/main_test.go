package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContent = `{
  "personalInfo": {"name": "Robin", "email": "robin@example.com"},
  "careerStartDate": "2019-03-01",
  "experience": [
    {"company": "Initech", "position": "Engineer", "period": "Jan 2022 - Present", "description": "• APIs\n• Tests"},
    {"company": "Initech", "position": "Junior", "period": "Mar 2019 - Dec 2021", "description": "Learned Go"}
  ],
  "projects": [{"title": "Task Manager", "description": "Tasks"}]
}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(func() time.Time { return time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC) })
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func contentFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--file", contentFile(t, sampleContent))
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 2 experience records, 1 projects")

	_, err = run(t, "validate", "--file", contentFile(t, `{"experience": []}`))
	assert.ErrorContains(t, err, "invalid portfolio file")

	_, err = run(t, "validate", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestTimelineCommand_Text(t *testing.T) {
	out, err := run(t, "timeline", "--file", contentFile(t, sampleContent))
	require.NoError(t, err)
	assert.Contains(t, out, "Years of experience: 7")
	assert.Contains(t, out, "Initech  (Mar 2019 - Present, 7 yrs 7 mos)")
	assert.Contains(t, out, "    - APIs")
}

func TestTimelineCommand_JSON(t *testing.T) {
	out, err := run(t, "timeline", "--json", "--file", contentFile(t, sampleContent))
	require.NoError(t, err)

	var decoded struct {
		YearsOfExperience int
		Groups            []json.RawMessage
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 7, decoded.YearsOfExperience)
	assert.Len(t, decoded.Groups, 1)
}

func TestDurationCommand(t *testing.T) {
	out, err := run(t, "duration", "Jan 2020 - Mar 2021")
	require.NoError(t, err)
	assert.Equal(t, "1 yr 2 mos\n", out)

	out, err = run(t, "duration", "whenever")
	require.NoError(t, err)
	assert.Equal(t, "(no duration)\n", out)

	_, err = run(t, "duration")
	assert.Error(t, err)
}
