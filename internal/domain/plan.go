package domain

type Plan int

const (
	PlanFree Plan = iota
	PlanPersonal
	PlanBusiness
	PlanEnterprise
	PlanEnterprisePro
)

var planNames = []string{"Free", "Personal", "Business", "Enterprise", "Enterprise Pro"}

func (p Plan) Name() string {
	if p < 0 || int(p) >= len(planNames) {
		return "Unknown"
	}

	return planNames[p]
}
