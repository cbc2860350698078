package entities

// MemberStatus is a user's membership status in a Telegram chat, as reported
// by getChatMember.
type MemberStatus string

const (
	MemberStatusCreator       MemberStatus = "creator"
	MemberStatusAdministrator MemberStatus = "administrator"
	MemberStatusMember        MemberStatus = "member"
	MemberStatusRestricted    MemberStatus = "restricted"
	MemberStatusLeft          MemberStatus = "left"
	MemberStatusKicked        MemberStatus = "kicked"
)

// IsActive reports whether the status counts as channel membership for the
// purposes of the verification gate.
func (s MemberStatus) IsActive() bool {
	switch s {
	case MemberStatusCreator, MemberStatusAdministrator, MemberStatusMember:
		return true
	}
	return false
}
