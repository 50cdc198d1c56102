package mood

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

const (
	// PointsPerTask is awarded for every newly completed task.
	PointsPerTask = 10
	// RainbowSlots is the number of progress indicators lit in order.
	RainbowSlots = 7
)

// Session holds the complete state of one check-in session.
//
// Every operation returns a new Session derived from the receiver; the
// receiver is never mutated. State lives in memory only and dies with
// the process.
type Session struct {
	// Random identifier, used only in debug output
	ID string
	// Last classified input
	Text string
	// Key of the current preset, empty before the first check-in
	Current string
	// Rolling mood journey (at most JourneyWindow entries)
	Journey []JourneyEntry
	// Accumulated points, no upper bound
	Points int
	// Progress indicators, lit in index order
	Rainbow [RainbowSlots]bool
	// IDs of completed tasks
	Completed map[string]bool
}

// NewSession starts a session with the demo journey seed.
func NewSession(today time.Time) Session {
	session := NewBlankSession()
	session.Journey = SeedJourney(today)
	return session
}

// NewBlankSession starts a session with an empty journey.
func NewBlankSession() Session {
	return Session{
		ID:        uuid.NewString(),
		Completed: make(map[string]bool),
	}
}

// CheckIn classifies the input and records today's mood in the journey.
func (s Session) CheckIn(input string, today time.Time) Session {
	next := s.clone()
	preset := Classify(input)
	next.Text = input
	next.Current = preset.Key
	next.Journey = RecordToday(next.Journey, preset, today)
	core.CurrentLogger().Debugf("[%s] check-in classified as %q", next.ID, preset.Key)
	core.CurrentLogger().Dump("session", next)
	return next
}

// CompleteTask awards points and lights the next rainbow slot.
//
// Completing an already-completed task is a no-op. Once all slots are lit,
// further completions still award points but leave the rainbow unchanged.
func (s Session) CompleteTask(taskID string) Session {
	if s.Completed[taskID] {
		return s
	}
	next := s.clone()
	next.Completed[taskID] = true
	next.Points += PointsPerTask
	for i := range next.Rainbow {
		if !next.Rainbow[i] {
			next.Rainbow[i] = true
			break
		}
	}
	core.CurrentLogger().Debugf("[%s] task %q completed (%d points)", next.ID, taskID, next.Points)
	return next
}

// CurrentPreset returns the preset of the last check-in, or nil before it.
func (s Session) CurrentPreset() *EmotionPreset {
	if s.Current == "" {
		return nil
	}
	preset, ok := PresetByKey(s.Current)
	if !ok {
		return nil
	}
	return preset
}

// RainbowCount returns how many slots are lit.
func (s Session) RainbowCount() int {
	count := 0
	for _, lit := range s.Rainbow {
		if lit {
			count++
		}
	}
	return count
}

// TaskCompleted returns if the task was already completed this session.
func (s Session) TaskCompleted(taskID string) bool {
	return s.Completed[taskID]
}

func (s Session) clone() Session {
	var next Session
	if err := copier.CopyWithOption(&next, &s, copier.Option{DeepCopy: true}); err != nil {
		core.CurrentLogger().Fatalf("Unable to copy session: %v", err)
	}
	if next.Completed == nil {
		next.Completed = make(map[string]bool)
	}
	return next
}

// TaskID derives a stable identifier from a suggested task text.
func TaskID(task string) string {
	id := slug.Make(task)
	if id == "" {
		// Texts with no transliterable rune
		return task
	}
	return id
}
