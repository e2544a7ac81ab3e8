// Package fare prices a journey from its distance.
package fare

type band struct {
	upToKM int
	rupees int
}

var bands = []band{
	{upToKM: 2, rupees: 10},
	{upToKM: 5, rupees: 20},
	{upToKM: 12, rupees: 30},
	{upToKM: 21, rupees: 40},
	{upToKM: 32, rupees: 50},
}

// MaxFare is charged beyond the last distance band.
const MaxFare = 60

// Calculate returns the fare in rupees for a journey of distanceKM.
func Calculate(distanceKM int) int {
	for _, b := range bands {
		if distanceKM <= b.upToKM {
			return b.rupees
		}
	}
	return MaxFare
}
