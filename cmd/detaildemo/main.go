package main

import (
	"flag"
	"fmt"
	"log"

	"listkit"
)

func main() {
	trace := flag.String("trace", "", "append trace log to this file")
	flag.Parse()

	if *trace != "" {
		closeTrace, err := listkit.TraceToFile(*trace)
		if err != nil {
			log.Fatal(err)
		}
		defer closeTrace()
	}

	app, err := listkit.NewApp()
	if err != nil {
		log.Fatal(err)
	}

	glyphs := map[string]rune{
		"note": '♪',
		"disc": '◉',
		"star": '★',
	}
	factory := listkit.IconFactoryFunc(func(name string, size int) listkit.Renderable {
		r, ok := glyphs[name]
		if !ok {
			return nil
		}
		return listkit.RuneImage{Rune: r, Style: listkit.DefaultStyle().Foreground(listkit.Cyan)}
	})

	list := listkit.NewListBox().Border(listkit.BorderRounded).Gap(1)
	rows := make([]*listkit.DetailedRow, 0, 60)
	names := []string{"note", "disc", "star", ""}
	for i := 0; i < 60; i++ {
		data := listkit.RowData{
			Title:    fmt.Sprintf("Track %02d <untitled>", i+1),
			Subtitle: fmt.Sprintf("Album %d · 3:%02d", i/12+1, i%60),
		}
		if name := names[i%len(names)]; name != "" {
			data.Icon = &listkit.NamedIcon{Name: name}
		}
		row := listkit.NewDetailedRow(data, factory)
		rows = append(rows, row)
		list.Add(row)
	}

	// Scroll the middle row into view on demand.
	target := rows[len(rows)/2]
	scroller := listkit.NewScroller(target, list, app.Idle())

	app.SetRoot(list)
	app.Handle('j', func() { list.ScrollBy(1) })
	app.Handle('k', func() { list.ScrollBy(-1) })
	app.Handle('t', func() { scroller.ScrollToTop() })
	app.Handle('c', func() { scroller.ScrollToCenter() })
	app.Handle('b', func() { scroller.ScrollToBottom() })

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
