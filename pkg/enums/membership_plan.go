package enums

// MembershipPlan identifies the paid tier attached to a user account.
type MembershipPlan string

const (
	MembershipPlanBasic      MembershipPlan = "basic"
	MembershipPlanPro        MembershipPlan = "pro"
	MembershipPlanEnterprise MembershipPlan = "enterprise"
)

var validMembershipPlans = []MembershipPlan{
	MembershipPlanBasic,
	MembershipPlanPro,
	MembershipPlanEnterprise,
}

// String implements fmt.Stringer.
func (m MembershipPlan) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MembershipPlan.
func (m MembershipPlan) IsValid() bool {
	for _, candidate := range validMembershipPlans {
		if candidate == m {
			return true
		}
	}
	return false
}
