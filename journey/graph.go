// Package journey is the truck's branching destination dialog.
package journey

import "fmt"

type Step string

const (
	StepInitial                    Step = "initial"
	StepMarket                     Step = "market"
	StepDelivery                   Step = "delivery"
	StepShopping                   Step = "shopping"
	StepKitchen                    Step = "kitchen"
	StepFinalConsumption           Step = "final_consumption"
	StepProcessingFactory          Step = "processing_factory"
	StepProcessingExport           Step = "processing_export"
	StepProcessingLivestockAgro    Step = "processing_livestock_agro"
	StepProcessingLivestockPoultry Step = "processing_livestock_poultry"
	StepProcessingLivestockFinal   Step = "processing_livestock_final"
	StepProcessingPetshop          Step = "processing_petshop"
	StepProcessingPetshopPet       Step = "processing_petshop_pet"
	StepProcessingPetshopAquarium  Step = "processing_petshop_aquarium"
)

// ExitScene is the scene the dialog navigates to when the journey ends.
const ExitScene = 3

const (
	LabelNext      = "What's Next?"
	LabelRestart   = "Back to Truck"
	LabelExit      = "Go back to Fish Market"
	labelToFactory = "Back to Factory"
	labelToMarket  = "Back to Main Market"
	labelToStart   = "Back"
	DialogTitle    = "The Journey Continues!"
)

// Choice is a labelled forward transition.
type Choice struct {
	Label  string
	Target Step
}

// Node is one screen of the dialog.
type Node struct {
	Step    Step
	Image   string
	Title   string
	Text    string
	Choices []Choice

	// Parent is the back edge target; empty when the node has none.
	Parent      Step
	ParentLabel string
	// BackToPrevious points the back edge at whichever step led here.
	BackToPrevious bool
	// Restart offers a jump back to initial.
	Restart bool
	// Exit ends the journey and navigates to ExitScene.
	Exit bool
}

var nodes = []Node{
	{
		Step:  StepInitial,
		Image: "images/truck/truck.png",
		Title: "Where does the fish go now?",
		Choices: []Choice{
			{Label: "For Consumption", Target: StepMarket},
			{Label: "For Processing", Target: StepProcessingFactory},
		},
	},

	{
		Step:  StepMarket,
		Image: "images/truck/market.png",
		Title: "Do you want home delivery or shopping?",
		Choices: []Choice{
			{Label: "Home Delivery", Target: StepDelivery},
			{Label: "Shopping", Target: StepShopping},
		},
		Parent:      StepInitial,
		ParentLabel: labelToStart,
		Restart:     true,
	},
	{
		Step:        StepDelivery,
		Image:       "images/truck/home_delivery.png",
		Choices:     []Choice{{Label: LabelNext, Target: StepKitchen}},
		Parent:      StepMarket,
		ParentLabel: labelToMarket,
		Restart:     true,
	},
	{
		Step:        StepShopping,
		Image:       "images/truck/local_shop.png",
		Choices:     []Choice{{Label: LabelNext, Target: StepKitchen}},
		Parent:      StepMarket,
		ParentLabel: labelToMarket,
		Restart:     true,
	},
	{
		Step:           StepKitchen,
		Image:          "images/truck/kitchen.png",
		Choices:        []Choice{{Label: LabelNext, Target: StepFinalConsumption}},
		Parent:         StepMarket,
		ParentLabel:    labelToMarket,
		BackToPrevious: true,
		Restart:        true,
	},
	{
		Step:        StepFinalConsumption,
		Image:       "images/truck/food.png",
		Text:        "The fish has completed its journey from the sea to the table, providing a nutritious meal.",
		Parent:      StepMarket,
		ParentLabel: labelToMarket,
		Restart:     true,
		Exit:        true,
	},

	{
		Step:  StepProcessingFactory,
		Image: "images/truck/factory.png",
		Text:  "Trawler owners now sell the bycatch fish to dealers, who partially process it before selling. Fish meal comprises around 6% of the final, processed feed.",
		Choices: []Choice{
			{Label: "Export", Target: StepProcessingExport},
			{Label: "Livestock", Target: StepProcessingLivestockAgro},
			{Label: "Pet Shop", Target: StepProcessingPetshop},
		},
		Parent:      StepInitial,
		ParentLabel: labelToStart,
		Restart:     true,
	},
	{
		Step:        StepProcessingExport,
		Image:       "images/truck/airplane.png",
		Text:        "In the financial year 2023-24, India exported marine products worth US$7.38 billion, overexploiting fish stocks.",
		Parent:      StepProcessingFactory,
		ParentLabel: labelToFactory,
		Restart:     true,
	},
	{
		Step:        StepProcessingLivestockAgro,
		Image:       "images/truck/poultry.png",
		Choices:     []Choice{{Label: LabelNext, Target: StepProcessingLivestockPoultry}},
		Parent:      StepProcessingFactory,
		ParentLabel: labelToFactory,
		Restart:     true,
	},
	{
		Step:        StepProcessingLivestockPoultry,
		Image:       "images/truck/poultry_farm.png",
		Choices:     []Choice{{Label: LabelNext, Target: StepProcessingLivestockFinal}},
		Parent:      StepProcessingFactory,
		ParentLabel: labelToFactory,
		Restart:     true,
	},
	{
		Step:        StepProcessingLivestockFinal,
		Image:       "images/truck/your_plate.png",
		Text:        "Over the last two decades, there has been a growing demand for bycatch fish from the poultry industry. Poultry production is growing faster in India than elsewhere in Asia, further increasing the demand for fish meal.",
		Parent:      StepProcessingFactory,
		ParentLabel: labelToFactory,
		Restart:     true,
		Exit:        true,
	},
	{
		Step:  StepProcessingPetshop,
		Image: "images/truck/pet_shop.png",
		Choices: []Choice{
			{Label: "Pet", Target: StepProcessingPetshopPet},
			{Label: "Aquarium", Target: StepProcessingPetshopAquarium},
		},
		Parent:      StepProcessingFactory,
		ParentLabel: labelToFactory,
		Restart:     true,
	},
	{
		Step:        StepProcessingPetshopPet,
		Image:       "images/truck/your_pet.png",
		Text:        "Pet food is made from small fish, fish heads, or bycatch from trawlers, cooked and ground into fishmeal or fish oil and mixed into kibble or wet food. Using large amounts of bycatch for pet food raises concerns about the impact on marine life and the food chain.",
		Parent:      StepProcessingFactory,
		ParentLabel: labelToFactory,
		Restart:     true,
		Exit:        true,
	},
	{
		Step:        StepProcessingPetshopAquarium,
		Image:       "images/truck/aquarium.png",
		Text:        "Fishmeal is a cheap source of protein and an important source of micronutrients not easily available in alternatives such as soybean.",
		Parent:      StepProcessingFactory,
		ParentLabel: labelToFactory,
		Restart:     true,
		Exit:        true,
	},
}

var graph = mustBuildGraph(nodes)

func mustBuildGraph(list []Node) map[Step]*Node {
	g, err := buildGraph(list)
	if err != nil {
		panic(err)
	}
	return g
}

func buildGraph(list []Node) (map[Step]*Node, error) {
	g := make(map[Step]*Node, len(list))
	for i := range list {
		n := &list[i]
		if _, dup := g[n.Step]; dup {
			return nil, fmt.Errorf("journey: duplicate step %q", n.Step)
		}
		g[n.Step] = n
	}
	if _, ok := g[StepInitial]; !ok {
		return nil, fmt.Errorf("journey: missing step %q", StepInitial)
	}

	for _, n := range g {
		labels := make(map[string]struct{}, len(n.Choices))
		for _, c := range n.Choices {
			if _, ok := g[c.Target]; !ok {
				return nil, fmt.Errorf("journey: step %q: unknown target %q", n.Step, c.Target)
			}
			if _, dup := labels[c.Label]; dup {
				return nil, fmt.Errorf("journey: step %q: duplicate choice %q", n.Step, c.Label)
			}
			labels[c.Label] = struct{}{}
		}
		if n.Parent != "" {
			if _, ok := g[n.Parent]; !ok {
				return nil, fmt.Errorf("journey: step %q: unknown parent %q", n.Step, n.Parent)
			}
		}
		if len(n.Choices) == 0 && n.Parent == "" && !n.Restart && !n.Exit {
			return nil, fmt.Errorf("journey: step %q is a dead end", n.Step)
		}
	}

	seen := map[Step]bool{StepInitial: true}
	queue := []Step{StepInitial}
	for len(queue) > 0 {
		cur := g[queue[0]]
		queue = queue[1:]
		for _, c := range cur.Choices {
			if !seen[c.Target] {
				seen[c.Target] = true
				queue = append(queue, c.Target)
			}
		}
	}
	for step := range g {
		if !seen[step] {
			return nil, fmt.Errorf("journey: step %q unreachable from %q", step, StepInitial)
		}
	}
	return g, nil
}

// BackLabel names the back button leading to step.
func BackLabel(step Step) string {
	switch step {
	case StepInitial:
		return labelToStart
	case StepMarket:
		return labelToMarket
	case StepProcessingFactory:
		return labelToFactory
	case StepDelivery:
		return "Back to Home Delivery"
	case StepShopping:
		return "Back to Shopping"
	default:
		return "Back"
	}
}

// Lookup returns the node for a step.
func Lookup(step Step) (Node, bool) {
	n, ok := graph[step]
	if !ok {
		return Node{}, false
	}
	return *n, true
}
