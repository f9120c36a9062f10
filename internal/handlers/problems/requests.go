package problems

// SubmitRequest is the body of a solution submission
type SubmitRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}
