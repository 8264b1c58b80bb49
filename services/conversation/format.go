package conversation

import (
	"fmt"
	"strings"

	"huddle/models"
	"huddle/services/scheduler"
)

// RenderSlots turns the tied candidate slots into "YYYY-MM-DD HH:MM" strings,
// anchoring each weekday to its first date in the requested range.
func RenderSlots(req *models.MeetingRequest, slots []models.CandidateSlot) []string {
	rendered := make([]string, 0, len(slots))
	for _, slot := range slots {
		date, err := scheduler.FirstDateOfWeekday(req.StartDate, req.EndDate, slot.Weekday)
		if err != nil {
			date = slot.Weekday
		}
		rendered = append(rendered, fmt.Sprintf("%s %s", date, scheduler.MinutesToClock(slot.StartMinute)))
	}
	return rendered
}

// renderProposal composes the human-readable summary of a resolution result.
func renderProposal(req *models.MeetingRequest, res *models.ResolutionResult) string {
	var sb strings.Builder
	if len(res.BestSlots) == 0 {
		sb.WriteString("No slot found: nobody is available at any candidate time in the requested range.")
		return sb.String()
	}

	fmt.Fprintf(&sb, "I found %d candidate time(s) with %d of %d participants available:\n",
		len(res.BestSlots), res.MaxParticipants, len(req.Participants))
	for _, s := range RenderSlots(req, res.BestSlots) {
		fmt.Fprintf(&sb, "• %s\n", s)
	}
	if len(res.UnavailableMandatory) > 0 {
		fmt.Fprintf(&sb, "Unavailable mandatory participants: %s\n", mentionList(res.UnavailableMandatory))
	}
	if len(res.Unknown) > 0 {
		fmt.Fprintf(&sb, "No stored timetable (assumed available): %s\n", mentionList(res.Unknown))
	}
	sb.WriteString("Reply in this thread with your preference among these times.")
	return sb.String()
}

// renderFinal composes the terminal summary: the chosen time plus the roster
// with their stated preferences.
func renderFinal(session *models.ThreadSession) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The meeting is scheduled for %s.\n", session.BestTime)
	if session.Request != nil {
		sb.WriteString("Participants:\n")
		for _, p := range session.Request.Participants {
			pref := session.Preferences[p]
			if pref == "" {
				pref = "(no preference given)"
			}
			fmt.Fprintf(&sb, "• <@%s>: %s\n", p, pref)
		}
	}
	return sb.String()
}

// renderAwaiting lists the participants whose preference is still missing.
func renderAwaiting(session *models.ThreadSession) string {
	var pending []string
	for _, p := range session.Request.Participants {
		if session.Preferences[p] == "" {
			pending = append(pending, p)
		}
	}
	return fmt.Sprintf("Noted! Still waiting on a preference from: %s", mentionList(pending))
}

// RenderTimetable is the human-readable echo of an imported timetable.
func RenderTimetable(schedule models.RawDayMap) string {
	var sb strings.Builder
	sb.WriteString("Here is the timetable I read:\n\n")
	for _, day := range models.Weekdays {
		fmt.Fprintf(&sb, "*%s*\n", day)
		classes := schedule[day]
		if len(classes) == 0 {
			sb.WriteString("• no classes\n")
			continue
		}
		for _, c := range classes {
			fmt.Fprintf(&sb, "• %s: %s ~ %s\n", c.Name, c.StartTime, c.EndTime)
		}
	}
	return sb.String()
}

func mentionList(ids []string) string {
	mentions := make([]string, 0, len(ids))
	for _, id := range ids {
		mentions = append(mentions, "<@"+id+">")
	}
	return strings.Join(mentions, ", ")
}
