// Package objio is the "external collaborator" I/O surface of spec.md §6:
// OBJ mesh reading/writing, landmark-list parsing, and the `.inp` input
// bundle that groups a layout mesh, a target mesh, and their landmark
// correspondence under one filename prefix.
//
// The core packages (mesh, embedding, oracle, greedy, bnb) never import
// objio — positions and connectivity flow into them through plain
// mesh.Mesh/embedding.Input values, exactly as spec.md §1 draws the line
// ("everything else ... is an external collaborator; only the interfaces
// it exposes to / consumes from the core are specified"). objio consumes
// only mesh.Mesh's public AddVertex/AddFace/Finalize surface — no package
// internals.
//
// Parsing follows the teacher corpus's small-explicit-parser convention
// (bufio.Scanner line loops with hand-rolled field validation) rather than
// a reflection-based config/struct-tag library, matching
// matrix.ParseDense's and core's own text-format readers.
package objio
