// Package werr implements the runtime's error taxonomy: a Kind × Message
// pair, annotated lazily with the source line that was executing when the
// error crossed an evaluator frame boundary.
//
// Kind partitions the runtime into subsystems (struct engine, COM bridge,
// control search, hashtable, class lifecycle, …); Message enumerates the
// sub-reason within a Kind and carries the offending value's display form,
// never a reference to the value itself. Builtins signal failure with the
// lighter BuiltinError, which the dispatcher wraps into a full Error at the
// call site, attaching the builtin's name as context.
package werr
