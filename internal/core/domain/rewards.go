package domain

// RewardPointsBalance is the demo loyalty balance shown on the rewards
// screen. Earning points is outside the prototype's scope.
const RewardPointsBalance = 850

type RewardTier struct {
	Name   string
	Points int
}

// Available is derived from the balance on read.
func (r RewardTier) Available(balance int) bool {
	return balance >= r.Points
}

func SeedRewardTiers() []RewardTier {
	return []RewardTier{
		{Name: "Free Chai", Points: 100},
		{Name: "Free Samosa", Points: 200},
		{Name: "₹50 Off Next Order", Points: 500},
		{Name: "Free Thali", Points: 1000},
	}
}
