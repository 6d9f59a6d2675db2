package world

// placeRooms tries NumRoomTries random rooms and carves every one that does
// not overlap an earlier room. Each accepted room becomes its own region.
func (b *builder) placeRooms() error {
	for i := 0; i < b.opts.NumRoomTries; i++ {
		room, ok := b.randomRoom()
		if !ok {
			continue
		}

		overlaps := false
		for _, other := range b.rooms {
			if room.Overlaps(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		b.rooms = append(b.rooms, room)

		b.startRegion()
		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				b.carve(Position{x, y})
			}
		}
	}
	return nil
}

// randomRoom draws an odd-sized room on odd coordinates. Sizes are kept close
// to square: one side grows by an even amount, the other stays put. It
// reports false when the drawn size does not fit inside the border.
func (b *builder) randomRoom() (Room, bool) {
	size := uniformRange(b.src, 1, 3+b.opts.RoomExtraSize)*2 + 1
	rectangularity := uniformRange(b.src, 0, 1+size/2) * 2
	width, height := size, size
	if b.src.Intn(2) < 1 {
		width += rectangularity
	} else {
		height += rectangularity
	}

	spanX := (b.grid.Width() - width) / 2
	spanY := (b.grid.Height() - height) / 2
	if spanX < 1 || spanY < 1 {
		return Room{}, false
	}

	return Room{
		X:      b.src.Intn(spanX)*2 + 1,
		Y:      b.src.Intn(spanY)*2 + 1,
		Width:  width,
		Height: height,
	}, true
}
