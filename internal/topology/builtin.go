package topology

import "github.com/metronav/pkg/metro/models"

// BuiltinName identifies the bundled network.
const BuiltinName = "Delhi Metro"

// Builtin returns the bundled Delhi Metro network. Station ids carry their
// line codes after "~".
func Builtin() Source {
	return NewStaticSource("builtin", delhiMetro())
}

func delhiMetro() *models.Topology {
	return &models.Topology{
		Name: BuiltinName,
		Stations: []string{
			"Noida Sector 62~B",
			"Botanical Garden~B",
			"Yamuna Bank~B",
			"Rajiv Chowk~BY",
			"Vaishali~B",
			"Moti Nagar~B",
			"Janak Puri West~BO",
			"Dwarka Sector 21~B",
			"Huda City Center~Y",
			"Saket~Y",
			"Vishwavidyalaya~Y",
			"Chandni Chowk~Y",
			"New Delhi~YO",
			"AIIMS~Y",
			"Shivaji Stadium~O",
			"DDS Campus~O",
			"IGI Airport~O",
			"Rajouri Garden~BP",
			"Netaji Subhash Place~PR",
			"Punjabi Bagh West~P",
		},
		Connections: []models.Connection{
			{From: "Noida Sector 62~B", To: "Botanical Garden~B", DistanceKM: 8},
			{From: "Botanical Garden~B", To: "Yamuna Bank~B", DistanceKM: 10},
			{From: "Yamuna Bank~B", To: "Vaishali~B", DistanceKM: 8},
			{From: "Yamuna Bank~B", To: "Rajiv Chowk~BY", DistanceKM: 6},
			{From: "Rajiv Chowk~BY", To: "Moti Nagar~B", DistanceKM: 9},
			{From: "Moti Nagar~B", To: "Janak Puri West~BO", DistanceKM: 7},
			{From: "Janak Puri West~BO", To: "Dwarka Sector 21~B", DistanceKM: 6},
			{From: "Huda City Center~Y", To: "Saket~Y", DistanceKM: 15},
			{From: "Saket~Y", To: "AIIMS~Y", DistanceKM: 6},
			{From: "AIIMS~Y", To: "Rajiv Chowk~BY", DistanceKM: 7},
			{From: "Rajiv Chowk~BY", To: "New Delhi~YO", DistanceKM: 1},
			{From: "New Delhi~YO", To: "Chandni Chowk~Y", DistanceKM: 2},
			{From: "Chandni Chowk~Y", To: "Vishwavidyalaya~Y", DistanceKM: 5},
			{From: "New Delhi~YO", To: "Shivaji Stadium~O", DistanceKM: 2},
			{From: "Shivaji Stadium~O", To: "DDS Campus~O", DistanceKM: 7},
			{From: "DDS Campus~O", To: "IGI Airport~O", DistanceKM: 8},
			{From: "Moti Nagar~B", To: "Rajouri Garden~BP", DistanceKM: 2},
			{From: "Punjabi Bagh West~P", To: "Rajouri Garden~BP", DistanceKM: 2},
			{From: "Punjabi Bagh West~P", To: "Netaji Subhash Place~PR", DistanceKM: 3},
		},
	}
}
