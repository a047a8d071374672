package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func issueFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	fields := make([]string, 0, len(verr.Issues))
	for _, issue := range verr.Issues {
		fields = append(fields, strings.Join(issue.Loc, "."))
	}
	return fields
}

func TestDecodeApplication_Defaults(t *testing.T) {
	body := `{"full_name":"Ada Lovelace","email":"ada@example.com","student_id":"S-1","department":"Math"}`

	app, err := DecodeApplication(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", app.FullName)
	assert.Equal(t, StatusPending, app.Status)
	assert.NotNil(t, app.Interests)
	assert.Empty(t, app.Interests)
	assert.Nil(t, app.Motivation)
}

func TestDecodeApplication_KeepsProvidedValues(t *testing.T) {
	body := `{"full_name":"Ada","email":"ada@example.com","student_id":"S-1","department":"Math",
		"interests":["robotics","3d"],"motivation":"I like it","status":"approved"}`

	app, err := DecodeApplication(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, []string{"robotics", "3d"}, app.Interests)
	require.NotNil(t, app.Motivation)
	assert.Equal(t, "I like it", *app.Motivation)
	assert.Equal(t, StatusApproved, app.Status)
}

func TestDecodeApplication_InvalidEmail(t *testing.T) {
	body := `{"full_name":"Ada","email":"not-an-email","student_id":"S-1","department":"Math"}`

	_, err := DecodeApplication(strings.NewReader(body))
	assert.Equal(t, []string{"body.email"}, issueFields(t, err))
}

func TestDecodeApplication_MissingFields(t *testing.T) {
	_, err := DecodeApplication(strings.NewReader(`{"email":"ada@example.com"}`))
	assert.ElementsMatch(t, []string{"body.full_name", "body.student_id", "body.department"}, issueFields(t, err))
}

func TestDecodeApplication_WrongType(t *testing.T) {
	body := `{"full_name":"Ada","email":"ada@example.com","student_id":"S-1","department":"Math","interests":"robotics"}`

	_, err := DecodeApplication(strings.NewReader(body))
	fields := issueFields(t, err)
	require.Len(t, fields, 1)
	assert.Contains(t, fields[0], "interests")
}

func TestDecode_MalformedAndEmptyBody(t *testing.T) {
	_, err := DecodeEvent(strings.NewReader(`{"title":`))
	issueFields(t, err)

	_, err = DecodeEvent(strings.NewReader(``))
	issueFields(t, err)
}

func TestDecodeBoardMember(t *testing.T) {
	member, err := DecodeBoardMember(strings.NewReader(`{"name":"Deniz","role":"President"}`))
	require.NoError(t, err)
	assert.NotNil(t, member.Socials)
	assert.Empty(t, member.Socials)

	member, err = DecodeBoardMember(strings.NewReader(`{"name":"Deniz","role":"President","socials":{"github":"https://github.com/deniz"}}`))
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/deniz", member.Socials["github"])

	_, err = DecodeBoardMember(strings.NewReader(`{"name":"Deniz"}`))
	assert.Equal(t, []string{"body.role"}, issueFields(t, err))
}

func TestDecodeEvent(t *testing.T) {
	event, err := DecodeEvent(strings.NewReader(`{"title":"Orientation"}`))
	require.NoError(t, err)
	assert.True(t, event.IsPublished)
	assert.Nil(t, event.StartTime)

	event, err = DecodeEvent(strings.NewReader(`{"title":"Hackathon","is_published":false,"start_time":"2025-10-01T09:00:00Z"}`))
	require.NoError(t, err)
	assert.False(t, event.IsPublished)
	require.NotNil(t, event.StartTime)
	assert.Equal(t, 2025, event.StartTime.Year())

	_, err = DecodeEvent(strings.NewReader(`{"title":"Hackathon","start_time":"tomorrow"}`))
	issueFields(t, err)
}

func TestDecodeAnnouncement(t *testing.T) {
	ann, err := DecodeAnnouncement(strings.NewReader(`{"title":"Welcome","content":"Hello all"}`))
	require.NoError(t, err)
	assert.True(t, ann.IsPublished)

	_, err = DecodeAnnouncement(strings.NewReader(`{"title":"Welcome"}`))
	assert.Equal(t, []string{"body.content"}, issueFields(t, err))
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError([]string{"query", "limit"}, "value is not a valid integer", "int_parsing")
	assert.Equal(t, "validation failed: query.limit: value is not a valid integer", err.Error())
}

func TestDecodeApplication_KeepsEmptyStrings(t *testing.T) {
	body := `{"full_name":"","email":"ada@example.com","student_id":"","department":"","status":""}`

	app, err := DecodeApplication(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, "", app.FullName)
	assert.Equal(t, "", app.Status)
}

func TestDecodeApplication_NullNotAllowed(t *testing.T) {
	body := `{"full_name":null,"email":"ada@example.com","student_id":"S-1","department":"Math","interests":null,"motivation":null}`

	_, err := DecodeApplication(strings.NewReader(body))
	assert.ElementsMatch(t, []string{"body.full_name", "body.interests"}, issueFields(t, err))
}

func TestDecode_TrailingData(t *testing.T) {
	_, err := DecodeEvent(strings.NewReader(`{"title":"T"} garbage`))
	assert.Equal(t, []string{"body"}, issueFields(t, err))

	_, err = DecodeEvent(strings.NewReader(`{"title":"T"} {"title":"U"}`))
	assert.Equal(t, []string{"body"}, issueFields(t, err))

	_, err = DecodeEvent(strings.NewReader("{\"title\":\"T\"}\n"))
	assert.NoError(t, err)
}

func TestDecodeBoardMember_SocialsAnyValue(t *testing.T) {
	member, err := DecodeBoardMember(strings.NewReader(`{"name":"Deniz","role":"President","socials":{"followers":120,"github":"https://github.com/deniz"}}`))
	require.NoError(t, err)

	assert.Equal(t, float64(120), member.Socials["followers"])
	assert.Equal(t, "https://github.com/deniz", member.Socials["github"])
}

func TestTimestamp_Layouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339 utc", "2025-10-01T09:00:00Z", time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", "2025-10-01T12:00:00+03:00", time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)},
		{"zoneless seconds", "2025-10-01T09:00:00", time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)},
		{"zoneless fraction", "2025-10-01T09:00:00.5", time.Date(2025, 10, 1, 9, 0, 0, 500000000, time.UTC)},
		{"datetime-local", "2025-10-01T09:00", time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := DecodeEvent(strings.NewReader(`{"title":"T","start_time":"` + tt.input + `"}`))
			require.NoError(t, err)
			require.NotNil(t, event.StartTime)
			assert.True(t, tt.want.Equal(event.StartTime.Time), "got %s", event.StartTime.Time)
		})
	}
}

func TestTimestamp_InvalidKeepsFieldName(t *testing.T) {
	_, err := DecodeEvent(strings.NewReader(`{"title":"T","end_time":"next friday"}`))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, []string{"body", "end_time"}, verr.Issues[0].Loc)
	assert.Equal(t, "datetime_parsing", verr.Issues[0].Type)

	_, err = DecodeEvent(strings.NewReader(`{"title":"T","end_time":42}`))
	assert.Equal(t, []string{"body.end_time"}, issueFields(t, err))
}

func TestTimestamp_EncodesAsBSONDate(t *testing.T) {
	event, err := DecodeEvent(strings.NewReader(`{"title":"T","start_time":"2025-10-01T09:00"}`))
	require.NoError(t, err)

	raw, err := bson.Marshal(event)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, primitive.NewDateTimeFromTime(time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)), doc["start_time"])
	assert.Nil(t, doc["end_time"])
}
