package domain

import "time"

// CurrentTime is the body of the reachability check.
type CurrentTime struct {
	Value time.Time `json:"value"`
}
