package request

// Name is validated by the profile command after trimming.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}
