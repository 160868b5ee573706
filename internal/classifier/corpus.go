package classifier

// Label marks a training example as clear or unclear
type Label int

const (
	Clear   Label = 0
	Unclear Label = 1
)

// Example is a labeled training sentence
type Example struct {
	Text  string
	Label Label
}

// DefaultCorpus is the fixed training set the process-wide model is fitted on.
var DefaultCorpus = []Example{
	{"The system shall be fast and scalable.", Unclear},
	{"The UI should be user-friendly and flexible.", Unclear},
	{"The system shall respond in under 2 seconds.", Clear},
	{"The process should handle 1000 records within 5 seconds.", Clear},
	{"The application must be reliable and robust.", Unclear},
	{"The system must store 10GB of logs daily.", Clear},
}
