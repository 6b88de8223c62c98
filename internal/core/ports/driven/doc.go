// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TableLoader: Reads CSV files into tables
//   - TableWriter: Writes cleaned tables back to CSV
//   - ColumnNormaliser: Rewrites the values of one column type
//   - NormaliserRegistry: Dispatches columns to the right normaliser
//   - Stage: One step of the cleaning pipeline
//   - CleanPipeline: Runs the stages in order
//   - CleanFactory: Builds loaders and pipelines from run settings
//   - Workspace: Lists and watches CSV files in the working directory
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Cleaning run history. Without it, past runs are not recorded
//     and the history views are empty.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
