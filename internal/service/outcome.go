package service

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailed
	OutcomeTransportError
	OutcomeUnexpectedError
)

var outcomeName = map[Outcome]string{
	OutcomeSuccess:         "success",
	OutcomeFailed:          "failed",
	OutcomeTransportError:  "transport_error",
	OutcomeUnexpectedError: "unexpected_error",
}

func (x Outcome) String() string {
	return outcomeName[x]
}
