package assist

// DecisionState is where a request ends up after the confirmation gate.
type DecisionState string

const (
	StateExecuted             DecisionState = "executed"
	StateAwaitingConfirmation DecisionState = "awaiting_confirmation"
)

// Confirmation is returned instead of executing a mutating action.
type Confirmation struct {
	NeedsConfirmation bool       `json:"needsConfirmation"`
	Action            ActionKind `json:"action"`
	Fields            FieldBag   `json:"fields"`
	Missing           []string   `json:"missing"`
}

type Decision struct {
	State        DecisionState
	Action       ActionKind
	Fields       FieldBag
	Confirmation *Confirmation
}

// Execute reports whether the caller may run the action now.
func (d Decision) Execute() bool {
	return d.State == StateExecuted
}

// Decide applies the confirmation policy. List actions always run; mutating
// actions run only when confirmed, however complete their fields are.
func Decide(action ActionKind, fields FieldBag, confirmed bool) (Decision, error) {
	if fields == nil {
		fields = FieldBag{}
	}

	switch {
	case action.IsList():
		return Decision{State: StateExecuted, Action: action, Fields: fields}, nil
	case action.Mutating() && confirmed:
		return Decision{State: StateExecuted, Action: action, Fields: fields}, nil
	case action.Mutating():
		return Decision{
			State:  StateAwaitingConfirmation,
			Action: action,
			Fields: fields,
			Confirmation: &Confirmation{
				NeedsConfirmation: true,
				Action:            action,
				Fields:            fields,
				Missing:           Missing(action, fields),
			},
		}, nil
	default:
		return Decision{}, &Error{Kind: KindUnsupportedAction, Message: "unsupported action: " + string(action)}
	}
}

// Merge layers caller overrides on top of extracted values. Null overrides are ignored.
func Merge(extracted, overrides FieldBag) FieldBag {
	out := extracted.Clone()
	for k, v := range overrides {
		if v == nil || !IsKnownField(k) {
			continue
		}
		out[k] = v
	}
	return out
}
