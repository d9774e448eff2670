package users_enums

type UserType string

const (
	UserTypeClient     UserType = "CLIENT"
	UserTypeFreelancer UserType = "FREELANCER"
)

func (t UserType) IsValid() bool {
	switch t {
	case UserTypeClient, UserTypeFreelancer:
		return true
	default:
		return false
	}
}
