package provision

// State is a provisioning pipeline state. Transitions only move forward, and
// Failed is absorbing.
type State int

// Pipeline states in transition order.
const (
	StateIdle State = iota
	StateDirectoryReady
	StateAcquired
	StateRelocated
	StateConfigPatched
	StateLanguageProcessed
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateIdle:              "Idle",
	StateDirectoryReady:    "DirectoryReady",
	StateAcquired:          "Acquired",
	StateRelocated:         "Relocated",
	StateConfigPatched:     "ConfigPatched",
	StateLanguageProcessed: "LanguageProcessed",
	StateDone:              "Done",
	StateFailed:            "Failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// Step names one pipeline step for error labelling.
type Step string

// Pipeline steps.
const (
	StepValidate    Step = "validate request"
	StepEnsureDir   Step = "create project directory"
	StepAcquire     Step = "acquire template"
	StepRelocate    Step = "relocate template"
	StepPatchConfig Step = "patch config"
	StepProcessLang Step = "process language"
)

// WarningKind classifies a non-fatal condition.
type WarningKind string

// Non-fatal conditions collected during a run.
const (
	WarningConfigStubAbsent  WarningKind = "config-stub-absent"
	WarningDependencyInstall WarningKind = "dependency-install"
)

// Warning is a non-fatal condition that did not stop the pipeline.
type Warning struct {
	Kind WarningKind
	// Err is the installer failure for WarningDependencyInstall.
	Err error
}

// Result describes how far a run got.
type Result struct {
	State         State
	ProjectDir    string
	ConfigWritten bool
	Warnings      []Warning
	// Transitions lists every state entered after Idle, in order.
	Transitions []State
}
