package builder_test

import (
	"fmt"

	"github.com/katalvlaran/cmalign/builder"
)

// ExampleBuild composes a helix-like band with one long-range contact.
func ExampleBuild() {
	cm, err := builder.Build(6, []builder.BuilderOption{builder.WithName("demo")},
		builder.Band(2),
		builder.Contacts([2]int{0, 5}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cm.Name(), cm.NumNodes(), cm.NumEdges())
	fmt.Println(cm.Neighbors(0))
	// Output:
	// demo 6 10
	// [1 2 5]
}
