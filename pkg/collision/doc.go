// Package collision resolves perfectly elastic collisions between two point masses in 2D.
//
// Two equivalent formulations are provided. ResolveAngleFree projects the relative velocity
// onto the line of centers and is the reference method. ResolveTrigonometric rotates into the
// contact-normal frame, applies the 1-D exchange and rotates back.
//
// Both formulas assume a right-handed Cartesian frame. When the caller works in display
// coordinates with Y pointing down, it must negate the Y component of both input velocities
// (Body.InvertedY) or of both outgoing velocities (Result.InvertedY, Config.InvertY), once.
//
// Collision detection is the caller's concern: the bodies are taken at the instant of contact.
package collision
