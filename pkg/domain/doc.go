/*
Package domain contains the model shared by the recognizer and its front ends.

It is kept free of I/O and persistence concerns.

# Key Entities

  - HitPolicy: how multiple matching rules combine (U, A, P, F, C, C+, C<, C>, C#, O, R).
  - DecisionTable: clauses, annotations and rules of a recognized table.
  - StoredTable: a decision table persisted together with its source text.
  - LifecycleHooks: callbacks fired after each recognition.
*/
package domain
