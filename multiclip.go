package meshclip

import "sync"

// PlaneBuilder turns an arbitrary sequence of cut points into the planes a
// clip actually runs against. Plane selection is out of scope for this
// module (spec.md §1 Non-goals); Process takes the conversion as an
// injected collaborator instead of prescribing one.
type PlaneBuilder func(cutPoints []Vec3) ([]Plane, error)

// MultiClipDefault runs MultiClip using DefaultConfig.
func MultiClipDefault(mesh Mesh, planes []Plane) MeshList {
	return MultiClip(mesh, planes, DefaultConfig(), nil)
}

// MultiClip repeatedly clips mesh against every plane in planes, feeding
// each plane's output fragments back in as the input to the next. A
// fragment that a plane misses passes through unchanged; a fragment with no
// triangles left is dropped rather than carried forward, matching the
// reference driver.
//
// When cfg.Workers > 1, the fragments produced by one plane are clipped
// against the next plane concurrently — safe because after a plane is
// applied, fragments never reference each other's geometry again.
func MultiClip(mesh Mesh, planes []Plane, cfg Config, sink StatsSink) MeshList {
	if sink == nil {
		sink = noopSink{}
	}

	working := MeshList{mesh}
	for _, plane := range planes {
		working = clipFragments(working, plane, cfg, sink)
		if len(working) == 0 {
			break
		}
	}
	return working
}

func clipFragments(fragments MeshList, plane Plane, cfg Config, sink StatsSink) MeshList {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]MeshList, len(fragments))
	if workers == 1 {
		for i, frag := range fragments {
			results[i] = clipOne(frag, plane, cfg, sink)
		}
	} else {
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for i, frag := range fragments {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, frag Mesh) {
				defer wg.Done()
				defer func() { <-sem }()
				results[i] = clipOne(frag, plane, cfg, sink)
			}(i, frag)
		}
		wg.Wait()
	}

	var out MeshList
	for _, r := range results {
		for _, frag := range r {
			if len(frag.Triangles) == 0 || len(frag.Vertices) == 0 {
				continue
			}
			if cfg.Preprocessor != nil {
				if p := cfg.Preprocessor(&frag); p != nil {
					frag = *p
				}
			}
			out = append(out, frag)
		}
	}
	return out
}

func clipOne(frag Mesh, plane Plane, cfg Config, sink StatsSink) MeshList {
	out, stats := Clip(frag, plane, cfg)
	sink.Record(stats)
	return out
}

// Process converts cutPoints to planes via buildPlanes and runs MultiClip
// against the result, recording each plane's stats through sink. It is the
// Go shape of the reference implementation's process() entry point.
func Process(mesh Mesh, cutPoints []Vec3, buildPlanes PlaneBuilder, cfg Config, sink StatsSink) (MeshList, error) {
	planes, err := buildPlanes(cutPoints)
	if err != nil {
		return nil, err
	}
	return MultiClip(mesh, planes, cfg, sink), nil
}
