package quest

// State is the serializable progress of one quest.
type State struct {
	ID       string `yaml:"id"`
	Progress []int  `yaml:"progress"`
	Rewarded bool   `yaml:"rewarded"`
}

// Journal is the ordered set of quests a character follows.
type Journal struct {
	quests []*Quest
}

// NewJournal returns an empty Journal.
func NewJournal() *Journal { return &Journal{} }

// Add appends q.
//
// Postcondition: Returns false with no change if a quest with q.ID is present.
func (j *Journal) Add(q *Quest) bool {
	if _, ok := j.Quest(q.ID); ok {
		return false
	}
	j.quests = append(j.quests, q)
	return true
}

// Quest returns the quest with id.
func (j *Journal) Quest(id string) (*Quest, bool) {
	for _, q := range j.quests {
		if q.ID == id {
			return q, true
		}
	}
	return nil, false
}

// Active returns the incomplete quests in order added.
func (j *Journal) Active() []*Quest {
	var out []*Quest
	for _, q := range j.quests {
		if !q.Complete() {
			out = append(out, q)
		}
	}
	return out
}

// Completed returns the complete quests in order added.
func (j *Journal) Completed() []*Quest {
	var out []*Quest
	for _, q := range j.quests {
		if q.Complete() {
			out = append(out, q)
		}
	}
	return out
}

// States returns the progress of every quest.
func (j *Journal) States() []State {
	out := make([]State, 0, len(j.quests))
	for _, q := range j.quests {
		s := State{ID: q.ID, Rewarded: q.rewarded}
		for _, o := range q.objectives {
			s.Progress = append(s.Progress, o.Progress())
		}
		out = append(out, s)
	}
	return out
}

// Restore applies s to q without firing its reward.
//
// Precondition: s.ID == q.ID.
func Restore(q *Quest, s State) {
	for i, o := range q.objectives {
		if i < len(s.Progress) {
			o.Restore(s.Progress[i])
		}
	}
	q.rewarded = s.Rewarded
}
