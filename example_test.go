package nativebridge_test

import (
	"fmt"

	"github.com/feather-lang/nativebridge"
	"github.com/feather-lang/nativebridge/native"
)

func ExampleAddPropertyGetter() {
	f := nativebridge.NewFactory(native.NewToolkit())
	defer f.Close()

	slider, _ := f.CreateObject(nativebridge.TypeSlider)
	defer slider.Release()
	slider.SetProperty("value", 0.5)

	// Expose the slider's properties as zero-argument getters.
	props := nativebridge.NewObject("slider")
	defer props.Close()
	slider.ExposeProperties(props)

	value, _ := props.Member("value")
	v, _ := value.Call(nil)
	fmt.Println(v)

	_, err := value.Call([]any{1})
	fmt.Println(err)
	// Output:
	// 0.5
	// wrong # args: "value" expected 0, got 1
}

func ExampleWithColorExtractor() {
	// A theme resolves its own color names and defers the rest to ColorParser.
	theme := nativebridge.ColorExtractorFunc(func(src any) (r, g, b, a float32, err error) {
		if src == "primary" {
			return 0.2, 0.4, 0.6, 1, nil
		}
		return nativebridge.ColorParser{}.ColorComponents(src)
	})

	f := nativebridge.NewFactory(native.NewToolkit(), nativebridge.WithColorExtractor(theme))
	defer f.Close()

	win, _ := f.CreateObject(nativebridge.TypeWindow)
	defer win.Release()
	if err := win.SetProperty("backgroundColor", "primary"); err != nil {
		fmt.Println(err)
		return
	}
	bg, _ := win.NativeHandle().(*native.Container).Background()
	fmt.Println(bg)
	// Output: #FF336699
}
