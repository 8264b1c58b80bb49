package ai

import (
	"fmt"
	"strings"
	"time"
)

const meetingParamsFormat = `{
  "meeting_duration": "The duration of the meeting in hours. (e.g. 1 for 1 hour, 1.5 for 1 hour 30 minutes)",
  "meeting_date_range": "The range of dates for the meeting. (e.g. 2023-05-31 to 2023-06-01)",
  "participants": "The list of participants for the meeting, given as chat user IDs. (e.g. U01ABCDEF, U01GHIJKLM)",
  "meeting_schedule_finalization_deadline": "The deadline for finalizing the meeting schedule, given as a date. (e.g. 2023-05-31)",
  "request": "Ask here for any additional information needed to extract the meeting details."
}`

const meetingParamsExample = `{"meeting_duration": "1.5", "meeting_date_range": "2023-05-31 to 2023-06-01", "participants": ["U01ABCDEF", "U01GHIJKLM"], "meeting_schedule_finalization_deadline": "2023-05-31"}`

// meetingParamsPrompt builds the system prompt for meeting-parameter
// extraction. The current date is injected so relative dates ("tomorrow",
// "next week") can be converted to absolute ones.
func meetingParamsPrompt(now time.Time) string {
	today := now.Format("2006-01-02")
	weekday := now.Weekday().String()
	return fmt.Sprintf(`You are a meeting scheduler for a school club. Users will request you to extract the meeting information from the message. Analyze the message and extract the following information: meeting duration, meeting date range, participants, and meeting schedule finalization deadline.

Meeting duration: The duration of the meeting in hours or minutes. (e.g. 1 for 1 hour, 1.5 for 1 hour 30 minutes)

Meeting date range: Users may provide absolute dates or relative dates (e.g. tomorrow, next week), and you should convert them to absolute dates. Today's date is %s %s. The output should be in the format of "YYYY-MM-DD to YYYY-MM-DD".

Participants: The list of participants for the meeting, given as chat user IDs. (e.g. U01ABCDEF, U01GHIJKLM)

Meeting schedule finalization deadline: A date, absolute or relative, converted to "YYYY-MM-DD". Today's date is %s %s.

Example output: %s

Strictly follow the output format. Respond with JSON only.

If the given information is not enough to extract the meeting information, ask for the missing information in the 'request' field. If not, leave it empty.

# Format
%s`, today, weekday, today, weekday, meetingParamsExample, meetingParamsFormat)
}

const timetableFormat = `{
  "Monday": [
    {
      "start_time": "The start time of the class. (e.g. 09:00)",
      "end_time": "The end time of the class. (e.g. 10:00)",
      "name": "The name of the class. (e.g. Introduction to Computer Science)",
      "index": 1
    }
  ],
  "Tuesday": [],
  "Wednesday": [],
  "Thursday": [],
  "Friday": []
}`

// timetablePrompt is the system prompt for timetable extraction from text or
// image input.
func timetablePrompt() string {
	return fmt.Sprintf(`You are a timetable manager for a school club. Users will give you their timetables in various formats, not limited to text and images. Analyze the message and extract the timetable information. Respond with the extracted information as JSON in the following structured format, with no additional prose:

# Format
%s

# Note
- If the given information is not enough to extract the timetable, do not ask for additional information; return empty day lists instead.`, timetableFormat)
}

const preferencesFormat = `{
  "best_time": "The best time for the meeting in the format of 'YYYY-MM-DD HH:MM'. (e.g. 2023-05-31 12:00)",
  "participants": [
    {
      "user_id": "The chat user ID of the participant.",
      "preference": "The availability of the participant. (e.g. I'm available at anytime.)"
    }
  ]
}`

// preferencesPrompt builds the system prompt for preference extraction over a
// proposed candidate slot list.
func preferencesPrompt(candidateSlots []string) string {
	return fmt.Sprintf(`You are a meeting scheduler for a school club. The possible meeting times are provided as a list and the participants might provide their preferences. Analyze the message and extract the following information: the best time for the meeting and the participants' preferences.

Possible meeting times:
%s

Best time: Consider the participants' preferences and choose the time that suits the most participants, in the format 'YYYY-MM-DD HH:MM'.

Participants: Each participant may provide their availability preference. If a participant has not provided any preference, use the empty string "".

Strictly follow the output format. Respond with JSON only.

# Format
%s`, "- "+strings.Join(candidateSlots, "\n- "), preferencesFormat)
}
